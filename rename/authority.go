// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rename

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/albertocavalcante/attrscaffold/asset"
	"github.com/albertocavalcante/attrscaffold/internal/cppbase"
	"github.com/albertocavalcante/attrscaffold/model"
)

// DefaultMaxNameLength is the longest member name a blueprint accepts.
const DefaultMaxNameLength = 100

// Authority enforces the naming rules of one namespace and applies
// committed renames to it.
type Authority interface {
	// ValidateName reports why name cannot be used, or nil.
	ValidateName(name string) error

	// Rename renames member oldName to newName.
	Rename(oldName, newName string) error
}

// Options tunes the naming authorities.
type Options struct {
	// MaxNameLength caps blueprint member names (0 = DefaultMaxNameLength).
	MaxNameLength int

	// PropagateClampReferences rewrites clamp bounds that follow a renamed
	// blueprint attribute.
	PropagateClampReferences bool

	// Logger receives rename diagnostics (nil = discard).
	Logger *slog.Logger
}

func (o Options) maxNameLength() int {
	if o.MaxNameLength > 0 {
		return o.MaxNameLength
	}
	return DefaultMaxNameLength
}

func (o Options) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// AuthorityFor returns the naming authority of owner.
func AuthorityFor(owner model.Asset, opts Options) (Authority, error) {
	switch a := owner.(type) {
	case *asset.Blueprint:
		return &BlueprintAuthority{Blueprint: a, Options: opts}, nil
	case *asset.Struct:
		return &StructAuthority{Struct: a, Options: opts}, nil
	case nil:
		return nil, newError(ErrUnsupportedOwner, "", "no asset selected")
	default:
		return nil, newError(ErrUnsupportedOwner, owner.AssetName(), "unsupported asset type %T", owner)
	}
}

// BlueprintAuthority validates member names of a visual-script asset:
// variables and function graphs share one namespace.
type BlueprintAuthority struct {
	Blueprint *asset.Blueprint
	Options   Options
}

// ValidateName implements Authority.
func (a *BlueprintAuthority) ValidateName(name string) error {
	switch {
	case name == "":
		return newError(ErrEmptyName, name, "")
	case utf8.RuneCountInString(name) > a.Options.maxNameLength():
		return newError(ErrTooLong, name, "name exceeds %d characters", a.Options.maxNameLength())
	case cppbase.IsReservedWord(name):
		return newError(ErrReservedWord, name, "")
	case a.Blueprint.HasMember(name):
		return newError(ErrNameCollision, name, "%s already has a member named %s", a.Blueprint.Name, name)
	}
	return nil
}

// Rename implements Authority. The variable and its replication handler
// are renamed together.
func (a *BlueprintAuthority) Rename(oldName, newName string) error {
	rewritten, err := a.Blueprint.RenameVariable(oldName, newName, a.Options.PropagateClampReferences)
	if err != nil {
		return fmt.Errorf("rename blueprint member: %w", err)
	}
	a.Options.log().Info("renamed blueprint variable",
		"asset", a.Blueprint.Name, "from", oldName, "to", newName)
	if len(rewritten) > 0 {
		a.Options.log().Info("retargeted clamp references",
			"asset", a.Blueprint.Name, "properties", rewritten)
	}
	return nil
}

// StructAuthority validates friendly names of a data-structure asset.
type StructAuthority struct {
	Struct  *asset.Struct
	Options Options
}

// ValidateName implements Authority.
func (a *StructAuthority) ValidateName(name string) error {
	if !a.Struct.IsUniqueFriendlyName(name) {
		return newError(ErrNameCollision, name, "%s already has a member named %s", a.Struct.Name, name)
	}
	return nil
}

// Rename implements Authority.
func (a *StructAuthority) Rename(oldName, newName string) error {
	if err := a.Struct.RenameMember(oldName, newName); err != nil {
		return fmt.Errorf("rename struct member: %w", err)
	}
	a.Options.log().Info("renamed struct member",
		"asset", a.Struct.Name, "from", oldName, "to", newName)
	return nil
}
