// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cppbase

import "testing"

func TestIsLegalIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "Health", want: true},
		{name: "leading digit", input: "3Lives", want: false},
		{name: "empty", input: "", want: false},
		{name: "leading underscore", input: "_Hidden", want: true},
		{name: "digits after first", input: "Slot2", want: true},
		{name: "space", input: "Max Health", want: false},
		{name: "dash", input: "max-health", want: false},
		{name: "only underscore", input: "_", want: true},
		{name: "non ascii", input: "Santé", want: false},
		{name: "dollar", input: "$cost", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLegalIdentifier(tc.input); got != tc.want {
				t.Errorf("IsLegalIdentifier(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "class", want: true},
		{input: "virtual", want: true},
		{input: "None", want: true},
		{input: "SELF", want: true},
		{input: "Class", want: false},
		{input: "Health", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsReservedWord(tc.input); got != tc.want {
				t.Errorf("IsReservedWord(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestGeneratedNames(t *testing.T) {
	if got := OnRepName("Stamina"); got != "OnRep_Stamina" {
		t.Errorf("OnRepName = %q", got)
	}
	if got := OldValueName("Stamina"); got != "OldStamina" {
		t.Errorf("OldValueName = %q", got)
	}
	if got := AccessorCall("MaxHealth"); got != "GetMaxHealthAttribute()" {
		t.Errorf("AccessorCall = %q", got)
	}
}

func TestFloatLiteral(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0.00f"},
		{input: 50, want: "50.00f"},
		{input: 100, want: "100.00f"},
		{input: 0.125, want: "0.12f"},
		{input: -1.5, want: "-1.50f"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FloatLiteral(tc.input); got != tc.want {
				t.Errorf("FloatLiteral(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestClassNameFor(t *testing.T) {
	tests := []struct {
		name   string
		asset  string
		prefix string
		want   string
	}{
		{name: "blueprint prefix", asset: "BP_PlayerAttributes", prefix: "U", want: "UPlayerAttributes"},
		{name: "struct prefix", asset: "S_Loadout", prefix: "F", want: "FLoadout"},
		{name: "no prefix", asset: "HeroSet", prefix: "U", want: "UHeroSet"},
		{name: "illegal chars", asset: "BP_Hero Set-2", prefix: "U", want: "UHeroSet2"},
		{name: "only prefix", asset: "BP_", prefix: "U", want: "UBP_"},
		{name: "nothing left", asset: "%%", prefix: "U", want: "UGenerated"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassNameFor(tc.asset, tc.prefix); got != tc.want {
				t.Errorf("ClassNameFor(%q, %q) = %q, want %q", tc.asset, tc.prefix, got, tc.want)
			}
		})
	}
}
