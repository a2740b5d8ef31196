// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rename

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/attrscaffold/asset"
	"github.com/albertocavalcante/attrscaffold/model"
)

func heroBlueprint() *asset.Blueprint {
	return &asset.Blueprint{
		Name: "BP_Hero",
		Variables: []model.PropertyDescriptor{
			{Name: "Max Health", DeclaredTypeName: "FGameplayAttributeData", IsReplicated: true},
			{
				Name:             "Health",
				DeclaredTypeName: "FGBAGameplayClampedAttributeData",
				IsClamped:        true,
				Clamp: &model.ClampedAttributeData{
					MaxValue: model.AttributeRef("Max Health"),
				},
			},
		},
		Functions: []string{"OnRep_Max Health", "ResetAll"},
	}
}

func TestProposeRename_Blueprint(t *testing.T) {
	tests := []struct {
		name     string
		newName  string
		opts     Options
		wantCode Code
	}{
		{name: "legal and unique", newName: "MaxHealth"},
		{name: "illegal", newName: "Max Health", wantCode: CodeIllegalIdentifier},
		{name: "leading digit", newName: "3Lives", wantCode: CodeIllegalIdentifier},
		{name: "empty", newName: "", wantCode: CodeIllegalIdentifier},
		{name: "collides with variable", newName: "health", wantCode: CodeNameCollision},
		{name: "collides with function", newName: "ResetAll", wantCode: CodeNameCollision},
		{name: "keyword", newName: "class", wantCode: CodeReservedWord},
		{name: "engine reserved", newName: "Self", wantCode: CodeReservedWord},
		{name: "too long", newName: strings.Repeat("A", 11), opts: Options{MaxNameLength: 10}, wantCode: CodeTooLong},
		{name: "default length", newName: strings.Repeat("A", DefaultMaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authority, err := AuthorityFor(heroBlueprint(), tt.opts)
			if err != nil {
				t.Fatalf("AuthorityFor: %v", err)
			}
			err = ProposeRename(tt.newName, authority)
			if got := CodeOf(err); got != tt.wantCode {
				t.Errorf("ProposeRename(%q) code = %q, want %q (err %v)", tt.newName, got, tt.wantCode, err)
			}
		})
	}
}

func TestProposeRename_Struct(t *testing.T) {
	s := &asset.Struct{
		Name:    "F_Stats",
		Members: []model.PropertyDescriptor{{Name: "Move Speed"}, {Name: "Armor"}},
	}
	authority, err := AuthorityFor(s, Options{})
	if err != nil {
		t.Fatalf("AuthorityFor: %v", err)
	}

	if err := ProposeRename("MoveSpeed", authority); err != nil {
		t.Errorf("ProposeRename(MoveSpeed) = %v, want nil", err)
	}
	if err := ProposeRename("ARMOR", authority); !errors.Is(err, ErrNameCollision) {
		t.Errorf("ProposeRename(ARMOR) = %v, want collision", err)
	}
	// Struct friendly names have no reserved words.
	if err := ProposeRename("class", authority); err != nil {
		t.Errorf("ProposeRename(class) = %v, want nil", err)
	}
}

func TestProposeRename_CollisionLeavesAssetUnmodified(t *testing.T) {
	bp := heroBlueprint()
	before := heroBlueprint()
	authority, _ := AuthorityFor(bp, Options{})

	err := ProposeRename("Health", authority)
	if !errors.Is(err, ErrNameCollision) {
		t.Fatalf("err = %v, want collision", err)
	}
	if diff := cmp.Diff(before, bp); diff != "" {
		t.Errorf("asset modified (-before +after):\n%s", diff)
	}
}

type unknownAsset struct{}

func (unknownAsset) AssetName() string                       { return "DataTable" }
func (unknownAsset) Properties() []model.PropertyDescriptor { return nil }

func TestAuthorityFor_Unsupported(t *testing.T) {
	if _, err := AuthorityFor(unknownAsset{}, Options{}); !errors.Is(err, ErrUnsupportedOwner) {
		t.Errorf("err = %v, want unsupported owner", err)
	}
	if _, err := AuthorityFor(nil, Options{}); !errors.Is(err, ErrUnsupportedOwner) {
		t.Errorf("nil owner err = %v, want unsupported owner", err)
	}
}

func TestNewWorkflow_RefusesLegalNames(t *testing.T) {
	authority, _ := AuthorityFor(heroBlueprint(), Options{})
	_, err := NewWorkflow(model.ListItem{RawText: "Health"}, authority, nil)
	if !errors.Is(err, ErrNotFlagged) {
		t.Errorf("err = %v, want not flagged", err)
	}
}

func TestWorkflow_Commit(t *testing.T) {
	item := model.ListItem{RawText: "x", RichText: "x", IllegalName: "Max Health"}

	t.Run("only on enter", func(t *testing.T) {
		bp := heroBlueprint()
		authority, _ := AuthorityFor(bp, Options{})
		wf, err := NewWorkflow(item, authority, nil)
		if err != nil {
			t.Fatalf("NewWorkflow: %v", err)
		}

		for _, how := range []CommitType{CommitDefault, CommitOnUserMovedFocus, CommitOnCleared} {
			ok, err := wf.Commit("MaxHealth", how)
			if ok || err != nil {
				t.Errorf("Commit(%s) = (%v, %v), want (false, nil)", how, ok, err)
			}
		}
		if diff := cmp.Diff(heroBlueprint(), bp); diff != "" {
			t.Errorf("asset modified before enter (-want +got):\n%s", diff)
		}

		ok, err := wf.Commit("MaxHealth", CommitOnEnter)
		if !ok || err != nil {
			t.Fatalf("Commit(enter) = (%v, %v), want (true, nil)", ok, err)
		}
		if bp.Variables[0].Name != "MaxHealth" {
			t.Errorf("variable = %q, want MaxHealth", bp.Variables[0].Name)
		}
		if bp.Functions[0] != "OnRep_MaxHealth" {
			t.Errorf("handler = %q, want OnRep_MaxHealth", bp.Functions[0])
		}
		if got := bp.Variables[1].Clamp.MaxValue.Attribute; got != "Max Health" {
			t.Errorf("clamp reference = %q, want unchanged", got)
		}
		if wf.OldName() != "MaxHealth" {
			t.Errorf("OldName() = %q after commit", wf.OldName())
		}
	})

	t.Run("verifies again on enter", func(t *testing.T) {
		bp := heroBlueprint()
		authority, _ := AuthorityFor(bp, Options{})
		wf, _ := NewWorkflow(item, authority, nil)

		ok, err := wf.Commit("Health", CommitOnEnter)
		if ok || !errors.Is(err, ErrNameCollision) {
			t.Errorf("Commit = (%v, %v), want collision", ok, err)
		}
		if diff := cmp.Diff(heroBlueprint(), bp); diff != "" {
			t.Errorf("asset modified (-want +got):\n%s", diff)
		}
	})

	t.Run("propagates clamp references when enabled", func(t *testing.T) {
		bp := heroBlueprint()
		authority, _ := AuthorityFor(bp, Options{PropagateClampReferences: true})
		wf, _ := NewWorkflow(item, authority, nil)

		if _, err := wf.Commit("MaxHealth", CommitOnEnter); err != nil {
			t.Fatalf("Commit: %v", err)
		}
		if got := bp.Variables[1].Clamp.MaxValue.Attribute; got != "MaxHealth" {
			t.Errorf("clamp reference = %q, want MaxHealth", got)
		}
	})

	t.Run("struct member", func(t *testing.T) {
		s := &asset.Struct{Name: "F_Stats", Members: []model.PropertyDescriptor{{Name: "Move Speed"}}}
		authority, _ := AuthorityFor(s, Options{})
		wf, err := NewWorkflow(model.ListItem{IllegalName: "Move Speed"}, authority, nil)
		if err != nil {
			t.Fatalf("NewWorkflow: %v", err)
		}
		if ok, err := wf.Commit("MoveSpeed", CommitOnEnter); !ok || err != nil {
			t.Fatalf("Commit = (%v, %v)", ok, err)
		}
		if s.Members[0].Name != "MoveSpeed" {
			t.Errorf("member = %q", s.Members[0].Name)
		}
	})
}

func TestError(t *testing.T) {
	err := newError(ErrNameCollision, "Health", "BP_Hero already has a member named Health")
	if got := err.Error(); got != `NAME_COLLISION: "Health": BP_Hero already has a member named Health` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrNameCollision) || errors.Is(err, ErrReservedWord) {
		t.Error("errors.Is must match on code only")
	}
	if got := Reason(err); got != "BP_Hero already has a member named Health" {
		t.Errorf("Reason() = %q", got)
	}
	if got := Reason(ProposeRename("1x", nil)); got != ErrIllegalIdentifier.Msg {
		t.Errorf("Reason(illegal) = %q", got)
	}
}
