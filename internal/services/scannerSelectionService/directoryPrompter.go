package scannerselectionservice

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

type DirectoryPrompter interface {
	SelectDirectories(names []string) ([]string, error)
}

type SurveyPrompter struct{}

func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

func (p *SurveyPrompter) SelectDirectories(names []string) ([]string, error) {
	prompt := &survey.MultiSelect{
		Message:  "Select projects to scan:",
		Options:  names,
		Default:  names,
		PageSize: 15,
	}

	var selected []string
	if err := survey.AskOne(prompt, &selected); err != nil {
		fmt.Print("selection cancelled")
		return nil, fmt.Errorf("selection error: %w", err)
	}

	return selected, nil
}
