package internal

import (
	"phase10/internal/domain"
)

const (
	// DoubletSize is the member count that completes a group.
	DoubletSize = 2
	// DoubletsNeeded is the completed group count that completes phase 1.
	DoubletsNeeded = 4
	// BorrowedSlot marks a member taken from the discard pile.
	BorrowedSlot = -1
)

// Member is a card placed in a group together with its hand slot.
type Member struct {
	Card domain.Card
	Slot int
}

// Group collects cards that share a number. A group opened by a joker has
// every number of the joker's half as a candidate key until a second card
// narrows it to one.
type Group struct {
	Keys    []int
	Members []Member
}

// Complete reports whether the group holds a doublet.
func (g *Group) Complete() bool {
	return len(g.Members) >= DoubletSize
}

func (g *Group) hasKey(n int) bool {
	for _, k := range g.Keys {
		if k == n {
			return true
		}
	}
	return false
}

// accepts returns the first key of the group the card can stand for.
func (g *Group) accepts(c domain.Card) (int, bool) {
	for _, n := range c.Numbers() {
		if g.hasKey(n) {
			return n, true
		}
	}
	return 0, false
}

func (g *Group) add(m Member) {
	if key, ok := g.accepts(m.Card); ok && len(g.Keys) > 1 {
		g.Keys = []int{key}
	}
	g.Members = append(g.Members, m)
}

// Solution is the grouping of one hand.
type Solution struct {
	Groups []*Group
	// Borrowed is set when the discard pile's top card joined a group.
	Borrowed bool
}

// CompletedCount returns the number of groups holding a doublet.
func (s Solution) CompletedCount() int {
	count := 0
	for _, g := range s.Groups {
		if g.Complete() {
			count++
		}
	}
	return count
}

// Complete reports whether the grouping satisfies phase 1.
func (s Solution) Complete() bool {
	return s.CompletedCount() >= DoubletsNeeded
}

// SlotsInCompleteGroups returns the hand slots of members of completed groups.
func (s Solution) SlotsInCompleteGroups() map[int]bool {
	slots := make(map[int]bool)
	for _, g := range s.Groups {
		if !g.Complete() {
			continue
		}
		for _, m := range g.Members {
			if m.Slot != BorrowedSlot {
				slots[m.Slot] = true
			}
		}
	}
	return slots
}

// firstOpen returns the first incomplete group, in creation order, that
// accepts the card.
func (s Solution) firstOpen(c domain.Card) *Group {
	for _, g := range s.Groups {
		if g.Complete() {
			continue
		}
		if _, ok := g.accepts(c); ok {
			return g
		}
	}
	return nil
}

// SolveDoublets groups a sorted hand into doublets in three greedy passes:
// number cards first-fit by number, then at most one borrow of the discard
// pile's top card, then jokers first-fit into open groups. A joker that fits
// nowhere opens one group keyed by all of its numbers.
func SolveDoublets(hand []domain.Card, top domain.Card, hasTop bool) Solution {
	var s Solution

	for slot, c := range hand {
		nc, ok := c.(domain.NumberCard)
		if !ok {
			continue
		}
		m := Member{Card: nc, Slot: slot}
		if g := s.firstOpen(nc); g != nil {
			g.add(m)
			continue
		}
		s.Groups = append(s.Groups, &Group{Keys: []int{nc.Number()}, Members: []Member{m}})
	}

	if hasTop && top != nil {
		if g := s.firstOpen(top); g != nil {
			g.add(Member{Card: top, Slot: BorrowedSlot})
			s.Borrowed = true
		}
	}

	for slot, c := range hand {
		jc, ok := c.(domain.JokerCard)
		if !ok {
			continue
		}
		m := Member{Card: jc, Slot: slot}
		if g := s.firstOpen(jc); g != nil {
			g.add(m)
			continue
		}
		s.Groups = append(s.Groups, &Group{Keys: jc.Numbers(), Members: []Member{m}})
	}

	return s
}
