package e2e

import (
	"github.com/cucumber/godog"

	"workdays/e2e/steps/calculate"
)

// RegisterSteps registers all step definitions from modular packages.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	calculate.RegisterSteps(ctx, tc)
}
