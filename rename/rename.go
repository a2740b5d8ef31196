// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package rename corrects attribute names that are not legal C++
// identifiers. A candidate is verified on every edit and applied to the
// owning asset only on an explicit confirmation.
package rename

import (
	"log/slog"

	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/model"
)

// ProposeRename checks newName against the identifier grammar, then
// against the owner's naming rules. It never mutates the owner.
func ProposeRename(newName string, authority Authority) error {
	if !cppbase.IsLegalIdentifier(newName) {
		return newError(ErrIllegalIdentifier, newName, "")
	}
	if authority == nil {
		return newError(ErrUnsupportedOwner, newName, "")
	}
	return authority.ValidateName(newName)
}

// CommitType tells how an edit ended.
type CommitType int

const (
	CommitDefault CommitType = iota
	CommitOnEnter
	CommitOnUserMovedFocus
	CommitOnCleared
)

// String returns the commit type name.
func (c CommitType) String() string {
	switch c {
	case CommitOnEnter:
		return "enter"
	case CommitOnUserMovedFocus:
		return "focus"
	case CommitOnCleared:
		return "cleared"
	default:
		return "default"
	}
}

// Workflow renames the illegal name flagged by one list item.
type Workflow struct {
	oldName   string
	authority Authority
	logger    *slog.Logger
}

// NewWorkflow starts a rename of item's illegal name. Items whose names
// all validated are refused.
func NewWorkflow(item model.ListItem, authority Authority, logger *slog.Logger) (*Workflow, error) {
	if !item.HasIllegalName() {
		return nil, newError(ErrNotFlagged, "", "")
	}
	if authority == nil {
		return nil, newError(ErrUnsupportedOwner, item.IllegalName, "")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workflow{oldName: item.IllegalName, authority: authority, logger: logger}, nil
}

// OldName returns the name being corrected.
func (w *Workflow) OldName() string {
	return w.oldName
}

// Verify reports why candidate cannot replace the old name, or nil.
func (w *Workflow) Verify(candidate string) error {
	return ProposeRename(candidate, w.authority)
}

// Commit applies confirmed when the edit ended with Enter, verifying it
// again first. It reports whether the owner was renamed.
func (w *Workflow) Commit(confirmed string, how CommitType) (bool, error) {
	if how != CommitOnEnter {
		w.logger.Debug("rename not committed", "name", w.oldName, "commit", how.String())
		return false, nil
	}
	if err := w.Verify(confirmed); err != nil {
		return false, err
	}
	if err := w.authority.Rename(w.oldName, confirmed); err != nil {
		return false, err
	}
	w.logger.Info("rename committed", "from", w.oldName, "to", confirmed)
	w.oldName = confirmed
	return true, nil
}
