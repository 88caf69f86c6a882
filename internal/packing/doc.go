// Package packing places non-overlapping circles inside a rounded-rectangle
// container.
//
// The package is the geometric core of the bottle demo: callers pass a
// circle count, a container size, a corner radius and a circle radius and
// receive center points for the spheres they spawn.
//
//   - [Request]: immutable packing input
//   - [Region]: the safe region circle centers may occupy
//   - [Strategy]: one placement phase ([RandomSearch], [SpiralGrid])
//   - [Packer]: runs strategies in order for every requested circle
//
// # Example
//
//	p := packing.NewHybrid(packing.NewSource(42))
//	pts := p.Pack(packing.Request{
//	    Count:        17,
//	    Container:    packing.Size{Width: 290, Height: 345},
//	    CornerRadius: 85,
//	    CircleRadius: 20,
//	})
//
// # Shortfall
//
// A circle that no strategy can place is dropped and the next circle is
// attempted, so the result may be shorter than the requested count. Use
// [Packer.PackExact] to get an [ErrCapacity] error in that case.
//
// # Thread Safety
//
// A Packer holds no state besides its strategies. [RandomSearch] reads its
// [Source] without locking; give each goroutine its own source.
package packing
