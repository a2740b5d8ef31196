// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errPromptCancelled is returned when the user abandons a prompt.
var errPromptCancelled = errors.New("prompt cancelled")

// Prompter asks for a replacement name. validate runs on every submission;
// a rejected answer is asked again.
type Prompter interface {
	AskName(message, help string, validate func(string) error) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) AskName(message, help string, validate func(string) error) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Help: help}
	check := func(ans interface{}) error {
		s, _ := ans.(string)
		return validate(s)
	}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(check)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errPromptCancelled
		}
		return "", err
	}
	return out, nil
}
