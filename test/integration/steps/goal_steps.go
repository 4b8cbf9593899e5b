package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// registerGoalSteps registers goal setup and assertion steps.
func registerGoalSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have created a goal named "([^"]*)" with target (\d+) ending in (\d+) days$`, iHaveCreatedAGoal)
	ctx.Step(`^I have created (\d+) goals with target (\d+) ending in (\d+) days$`, iHaveCreatedGoals)
	ctx.Step(`^I add (\d+(?:\.\d+)?) progress to "([^"]*)"$`, iAddProgressTo)
	ctx.Step(`^the goal "([^"]*)" should be completed$`, theGoalShouldBeCompleted)
	ctx.Step(`^the goal "([^"]*)" should not be completed$`, theGoalShouldNotBeCompleted)
	ctx.Step(`^the goal list should have (\d+) goals$`, theGoalListShouldHaveGoals)
}

func (tc *TestContext) createGoal(name string, target int, days int) error {
	endDate := time.Now().AddDate(0, 0, days).Format("2006-01-02")
	body := fmt.Sprintf(`{"name":%q,"category":"other","targetAmount":%d,"endDate":%q}`, name, target, endDate)

	if err := tc.doRequest("POST", "/api/v1/goals", strings.NewReader(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("goal creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse created goal: %w", err)
	}
	tc.createdGoalIDs[name] = created.ID
	return nil
}

func iHaveCreatedAGoal(ctx context.Context, name string, target, days int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.createGoal(name, target, days); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveCreatedGoals(ctx context.Context, count, target, days int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	for i := 1; i <= count; i++ {
		if err := tc.createGoal(fmt.Sprintf("Goal %d", i), target, days); err != nil {
			return ctx, err
		}
	}
	return SetTestContext(ctx, tc), nil
}

func iAddProgressTo(ctx context.Context, amount, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	goalID, ok := tc.createdGoalIDs[name]
	if !ok {
		return ctx, fmt.Errorf("unknown goal %q", name)
	}

	body := fmt.Sprintf(`{"amount":%s}`, amount)
	if err := tc.doRequest("POST", "/api/v1/goals/"+goalID+"/progress", strings.NewReader(body)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) fetchGoal(name string) (map[string]interface{}, error) {
	goalID, ok := tc.createdGoalIDs[name]
	if !ok {
		return nil, fmt.Errorf("unknown goal %q", name)
	}

	if err := tc.doRequest("GET", "/api/v1/goals/"+goalID, nil); err != nil {
		return nil, err
	}
	if tc.response.StatusCode != 200 {
		return nil, fmt.Errorf("failed to fetch goal %q: status %d", name, tc.response.StatusCode)
	}

	var goal map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &goal); err != nil {
		return nil, fmt.Errorf("failed to parse goal: %w", err)
	}
	return goal, nil
}

func theGoalShouldBeCompleted(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	goal, err := tc.fetchGoal(name)
	if err != nil {
		return err
	}
	if completed, _ := goal["isCompleted"].(bool); !completed {
		return fmt.Errorf("expected goal %q to be completed", name)
	}
	return nil
}

func theGoalShouldNotBeCompleted(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	goal, err := tc.fetchGoal(name)
	if err != nil {
		return err
	}
	if completed, _ := goal["isCompleted"].(bool); completed {
		return fmt.Errorf("expected goal %q to not be completed", name)
	}
	return nil
}

func theGoalListShouldHaveGoals(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := tc.doRequest("GET", "/api/v1/goals", nil); err != nil {
		return err
	}

	var list struct {
		Goals []json.RawMessage `json:"goals"`
	}
	if err := json.Unmarshal(tc.responseBody, &list); err != nil {
		return fmt.Errorf("failed to parse goal list: %w", err)
	}
	if len(list.Goals) != expected {
		return fmt.Errorf("expected %d goals, got %d", expected, len(list.Goals))
	}
	return nil
}
