package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"SignalBoard/internal/model"
	"SignalBoard/internal/strategy"
)

// PromptForPeriod asks for one of the supported lookback periods.
func PromptForPeriod(current string) (string, error) {
	var period string
	prompt := &survey.Select{
		Message: "Select the history range:",
		Options: model.Periods,
		Default: defaultOption(model.Periods, current),
		Help:    "Longer ranges give the 50-day average more room to settle.",
	}
	if err := survey.AskOne(prompt, &period); err != nil {
		return "", err
	}
	return period, nil
}

// PromptForHorizon asks for the prediction horizon in trading days.
func PromptForHorizon(current int) (int, error) {
	options := make([]string, len(strategy.Horizons))
	for i, h := range strategy.Horizons {
		options[i] = strconv.Itoa(h)
	}
	var selected string
	prompt := &survey.Select{
		Message: "Prediction horizon (days):",
		Options: options,
		Default: defaultOption(options, strconv.Itoa(current)),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return 0, err
	}
	h, err := strconv.Atoi(selected)
	if err != nil {
		return 0, fmt.Errorf("parse horizon %q: %w", selected, err)
	}
	return h, nil
}

func defaultOption(options []string, current string) string {
	for _, o := range options {
		if o == current {
			return o
		}
	}
	return options[0]
}
