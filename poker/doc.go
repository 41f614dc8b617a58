// Package poker ranks five-card poker hands in constant time.
//
// Cards are packed into a single uint32 so that a flush is one AND across
// the hand and the set of ranks present is one OR. Evaluate combines that
// encoding with precomputed tables: suited hands read the flush table,
// five distinct ranks read the unique table, and everything with a repeated
// rank goes through a perfect hash of the product of per-rank primes.
//
//	h, err := poker.ParseHand("Kd 5s Jc Ah Qc")
//	if err != nil {
//		return err
//	}
//	fmt.Println(h.Rank(), h.Rank().Category())
package poker
