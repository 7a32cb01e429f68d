/*
NAME
  label.go

DESCRIPTION
  label.go implements the text-data SDO variant: a time-ordered label
  list, held as an owned, sorted slice rather than a doubly-linked
  list. Time-ordered insertion, with or without LBL_ADD_AS_LAST, walks
  to the first strictly-later label and inserts before it, so a new
  label lands after any existing labels with the same time.

AUTHOR
  Michel T.M. Scheffers (original); Go port for goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sdo

import "sort"

// Label is one named point or stretch marker. At least one of
// SampleNumber or Time is meaningful; HasSampleNumber/HasTime record
// which.
type Label struct {
	Name           string
	SampleNumber   int64
	Time           float64
	HasSampleNumber bool
	HasTime         bool
}

// InsertMode controls where AddLabel places a new label relative to
// existing ones.
type InsertMode int

const (
	// InsertAtTail appends after all existing labels.
	InsertAtTail InsertMode = iota
	// InsertAtHead prepends before all existing labels.
	InsertAtHead
	// InsertAtTime inserts in time order: before the first existing
	// label whose Time is strictly greater.
	InsertAtTime
	// InsertAtTimeAsLast corresponds to the reference library's
	// LBL_ADD_AS_LAST and uses the same rule as InsertAtTime: it inserts
	// before the first strictly-later label, which places the new label
	// after the last existing label with the same Time.
	InsertAtTimeAsLast
)

// LabelList is a time-ordered sequence of labels, held as an owned
// slice rather than an intrusive doubly-linked list.
type LabelList struct {
	labels []Label
}

// NewLabelList returns an empty label list.
func NewLabelList() *LabelList { return &LabelList{} }

// Len returns the number of labels in the list.
func (l *LabelList) Len() int { return len(l.labels) }

// At returns the label at position i (0-based, in list order).
func (l *LabelList) At(i int) Label { return l.labels[i] }

// All returns the labels in list order; the returned slice aliases the
// list's internal storage and must not be mutated by the caller.
func (l *LabelList) All() []Label { return l.labels }

// Add inserts lbl per mode and returns the index it was inserted at.
func (l *LabelList) Add(lbl Label, mode InsertMode) int {
	switch mode {
	case InsertAtHead:
		l.labels = append([]Label{lbl}, l.labels...)
		return 0
	case InsertAtTail:
		l.labels = append(l.labels, lbl)
		return len(l.labels) - 1
	case InsertAtTime, InsertAtTimeAsLast:
		// Both modes use the same rule: insert before the first label
		// whose Time is strictly greater than lbl.Time. InsertAtTimeAsLast
		// does not special-case same-time runs, matching the reference
		// library's observed (if surprising) behavior.
		idx := sort.Search(len(l.labels), func(i int) bool {
			return l.labels[i].Time > lbl.Time
		})
		l.labels = append(l.labels, Label{})
		copy(l.labels[idx+1:], l.labels[idx:])
		l.labels[idx] = lbl
		return idx
	default:
		l.labels = append(l.labels, lbl)
		return len(l.labels) - 1
	}
}

// RemoveAt deletes the label at position i.
func (l *LabelList) RemoveAt(i int) {
	l.labels = append(l.labels[:i], l.labels[i+1:]...)
}
