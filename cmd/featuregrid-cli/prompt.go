package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// prompter abstracts the terminal so renderer selection can be tested
// without a TTY.
type prompter interface {
	Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error)
}

type surveyPrompter struct{}

func newSurveyPrompter() prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		prompt.Default = options[defaultIndex]
	}

	var out int
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, context.Canceled
		}
		return 0, err
	}
	return out, nil
}

func chooseRenderer(ctx context.Context, p prompter, names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no renderers registered")
	}
	if len(names) == 1 {
		return names[0], nil
	}

	defaultIndex := 0
	for i, name := range names {
		if name == "vanilla" {
			defaultIndex = i
			break
		}
	}

	index, err := p.Select(ctx, "Renderer", names, defaultIndex)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(names) {
		return "", fmt.Errorf("renderer selection %d out of range", index)
	}
	return names[index], nil
}
