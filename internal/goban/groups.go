package goban

import (
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// GroupID identifies a group within one detection pass. IDs are dense and follow the
// row-major order in which each group is first met.
type GroupID int

// NoGroup is returned for coordinates that hold no stone.
const NoGroup GroupID = -1

// Group is a maximal set of same-owner stones joined by up/down/left/right adjacency.
type Group struct {
	ID         GroupID
	Owner      entity.Player
	Stones     []entity.Coordinate
	HasLiberty bool
}

// Groups is the result of one detection pass over a board.
type Groups struct {
	groups  []Group
	byCoord map[entity.Coordinate]GroupID
}

// All returns every group ordered by ID.
func (that *Groups) All() []Group {
	return that.groups
}

// GroupOf returns the group holding c.
func (that *Groups) GroupOf(c entity.Coordinate) (Group, bool) {
	id, ok := that.byCoord[c]
	if !ok {
		return Group{}, false
	}

	return that.groups[id], true
}

// IDOf returns the ID of the group holding c, or NoGroup.
func (that *Groups) IDOf(c entity.Coordinate) GroupID {
	id, ok := that.byCoord[c]
	if !ok {
		return NoGroup
	}

	return id
}

// DetectGroups labels every stone with its group and each group with its liberty flag.
//
// The board is scanned once in row-major order. Each stone only looks back at its up
// and left neighbors; when both belong to the owner under different labels the labels
// are joined in a union-find, so arms that meet only further down the scan still end
// up in one group.
func DetectGroups(board *Board) *Groups {
	var uf unionFind
	labels := make(map[entity.Coordinate]int, board.Len())

	forEachCoordinate(func(c entity.Coordinate) {
		owner, ok := board.At(c)
		if !ok {
			return
		}

		label := -1
		if c.X() > 0 {
			up := entity.MustCoordinate(c.X()-1, c.Y())
			if p, ok := board.At(up); ok && p == owner {
				label = uf.find(labels[up])
			}
		}
		if c.Y() > 0 {
			left := entity.MustCoordinate(c.X(), c.Y()-1)
			if p, ok := board.At(left); ok && p == owner {
				root := uf.find(labels[left])
				if label < 0 {
					label = root
				} else {
					label = uf.union(label, root)
				}
			}
		}
		if label < 0 {
			label = uf.add()
		}

		labels[c] = label
		if board.hasLiberty(c) {
			uf.liberty[label] = true
		}
	})

	result := &Groups{byCoord: make(map[entity.Coordinate]GroupID, len(labels))}
	ids := make(map[int]GroupID)

	forEachCoordinate(func(c entity.Coordinate) {
		label, ok := labels[c]
		if !ok {
			return
		}

		root := uf.find(label)
		id, seen := ids[root]
		if !seen {
			id = GroupID(len(result.groups))
			ids[root] = id
			owner, _ := board.At(c)
			result.groups = append(result.groups, Group{
				ID:         id,
				Owner:      owner,
				HasLiberty: uf.liberty[root],
			})
		}

		result.groups[id].Stones = append(result.groups[id].Stones, c)
		result.byCoord[c] = id
	})

	return result
}

// unionFind keeps one liberty flag per root label.
type unionFind struct {
	parent  []int
	liberty []bool
}

func (that *unionFind) add() int {
	that.parent = append(that.parent, len(that.parent))
	that.liberty = append(that.liberty, false)

	return len(that.parent) - 1
}

func (that *unionFind) find(label int) int {
	root := label
	for that.parent[root] != root {
		root = that.parent[root]
	}

	for that.parent[label] != root {
		next := that.parent[label]
		that.parent[label] = root
		label = next
	}

	return root
}

// union joins two roots and returns the surviving one.
func (that *unionFind) union(a, b int) int {
	if a == b {
		return a
	}

	that.parent[b] = a
	that.liberty[a] = that.liberty[a] || that.liberty[b]

	return a
}
