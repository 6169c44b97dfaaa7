// Package ansatz evaluates the closed-form expected cut of a depth-one XQAOA
// ansatz (Equation 22 of the XQAOA paper) on a graph.Model.
//
// An Evaluator holds one alpha and one beta angle per node and one gamma
// angle per edge. SetAngles replaces all of them from a flat vector laid out
// as
//
//	[ α_0 … α_{n-1} | β_0 … β_{n-1} | γ_{e_0} … γ_{e_{m-1}} ]
//
// where node blocks follow ascending node id and the gamma block follows the
// canonical edge order of graph.Model.EdgeKeys. TotalCost then computes, for
// every edge (u,v) with triangle set F, e = N(v)\{u} and d = N(u)\{v}:
//
//	term1 = cos2α_u·cos2α_v·sinγ_uv·( cos2β_u·sin2β_v·Π_{w∈e} cosγ_wv
//	                                + sin2β_u·cos2β_v·Π_{w∈d} cosγ_uw )
//	term2 = −½·sin2α_u·sin2α_v·Π_{E} cosγ·( Π_F cos(γ_uf+γ_vf) + Π_F cos(γ_uf−γ_vf) )
//	term3 = ½·cos2α_u·sin2β_u·cos2α_v·sin2β_v·Π_{E} cosγ·( Π_F cos(γ_uf+γ_vf) − Π_F cos(γ_uf−γ_vf) )
//
// with E the side edges of e and d whose far endpoint is not in F, and
// term3 = 0 whenever F is empty. The edge cost is ½ + ½(term1+term2+term3)
// and TotalCost is the sum over all edges.
//
// Which gamma angles enter each product is decided once, in New, and stored
// as a per-edge plan of gamma indices; evaluation never touches the graph.
//
// Concurrency:
//
//	The graph.Model is only read and may be shared by any number of
//	Evaluators. A single Evaluator is not safe for concurrent use: confine it
//	to one goroutine or serialise SetAngles/TotalCost externally.
package ansatz
