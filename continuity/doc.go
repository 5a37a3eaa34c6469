// Package continuity decides uniform continuity and its strengthenings for
// maps between uniform spaces.
//
// A map f : X → Y is uniformly continuous when
//
//	Tendsto(f × f, 𝓤X, 𝓤Y)
//
// i.e. for every entourage t of Y some entourage s of X has
// (a, b) ∈ s ⇒ (f a, f b) ∈ t. UniformInducing asks for the exact equality
// Comap(f × f, 𝓤Y) = 𝓤X; an injective inducing map is a UniformEmbedding.
// DenseRange and DenseWitness describe how f(X) sits inside Y, which is
// what the completion package needs from an embedding.
//
// Every check runs over the finite carriers of the spaces involved.
package continuity
