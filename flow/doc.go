// Package flow traces vector fields into evenly spaced trajectories.
//
// A Field maps page positions to directions. Trace seeds a jittered
// lattice over the drawable area, integrates each seed through the field
// and packs the results with an OccupancyGrid so neighboring lines keep
// their distance. FlowField, Streamlines and Ribbons are complete
// generators built on Trace; each owns its random engine, so concurrent
// calls never interfere.
package flow
