// Package optical provides the optical-domain value types used by the switch
// driver: frequencies, ITU-T spectral band boundaries, channel spacings and
// the OchSignal channel descriptor, plus enumeration of fixed-spacing
// frequency grids.
//
// All frequencies are held in Hz as 64-bit integers, which keeps grid
// arithmetic exact across the usable optical spectrum.
package optical
