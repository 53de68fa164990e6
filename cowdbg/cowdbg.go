/*
Package cowdbg implements helpers to debug sharing between copy-on-write queues.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cowdbg

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cow/queue"
	tp "github.com/xlab/treeprint"
)

// Dump renders a tree of backing stores, each with the names of the handles
// currently referencing it. Clients name their handles by the keys of handles:
//
//     fmt.Println(cowdbg.Dump(map[string]*queue.Queue[int]{"a": &a, "b": &b}))
//
// outputs something like
//
//     .
//     └── store refs=2 [1 2]
//         ├── a
//         └── b
//
// Handles without a store (zero values or released handles) are listed on their own.
func Dump[T any](handles map[string]*queue.Queue[T]) string {
	names := make([]string, 0, len(handles))
	for name := range handles {
		names = append(names, name)
	}
	sort.Strings(names)
	var groups []*sharers[T]
	for _, name := range names {
		q := handles[name]
		var g *sharers[T]
		for _, candidate := range groups {
			if candidate.rep.Shares(q) {
				g = candidate
				break
			}
		}
		if g == nil {
			g = &sharers[T]{rep: q}
			groups = append(groups, g)
		}
		g.names = append(g.names, name)
	}
	printer := tp.New()
	for _, g := range groups {
		branch := printer.AddBranch(g.String())
		for _, name := range g.names {
			branch.AddNode(name)
		}
	}
	return printer.String()
}

// sharers is a group of handles referencing the same store, represented by rep.
type sharers[T any] struct {
	rep   *queue.Queue[T]
	names []string
}

func (g sharers[T]) String() string {
	if !g.rep.Shares(g.rep) {
		return "no store"
	}
	return fmt.Sprintf("store refs=%d %v", g.rep.Refs(), g.rep.Slice())
}
