package rubric

// Default step plans by question size. The weights are percentages; the
// last step always absorbs the rounding remainder so the generated marks
// sum exactly to the question total.
var (
	twoStepPlan = []stepTemplate{
		{50, "State the relevant concept or formula"},
		{50, "Apply it to reach the correct answer"},
	}
	threeStepPlan = []stepTemplate{
		{20, "Identify what is asked and the given information"},
		{50, "Carry out the main working correctly"},
		{30, "State the final answer with correct units or form"},
	}
	fourStepPlan = []stepTemplate{
		{15, "Identify what is asked and the given information"},
		{35, "Choose and set up the correct method"},
		{30, "Carry out the working without errors"},
		{20, "State and justify the final answer"},
	}
)

type stepTemplate struct {
	weight      int
	description string
}

// GenerateSteps produces the default rubric for a subjective question worth
// totalMarks. 2, 3 or 4 steps depending on magnitude; every step is worth
// at least one mark and the step marks sum exactly to totalMarks.
func GenerateSteps(totalMarks int) []Step {
	if totalMarks < 1 {
		return nil
	}
	if totalMarks == 1 {
		return []Step{{Number: 1, Description: "Give the correct answer", Marks: 1}}
	}

	var plan []stepTemplate
	switch {
	case totalMarks <= 2:
		plan = twoStepPlan
	case totalMarks <= 5:
		plan = threeStepPlan
	default:
		plan = fourStepPlan
	}

	steps := make([]Step, len(plan))
	used := 0
	for i, tmpl := range plan {
		marks := totalMarks * tmpl.weight / 100
		if marks < 1 {
			marks = 1
		}
		steps[i] = Step{
			Number:      i + 1,
			Description: tmpl.description,
			Marks:       marks,
		}
		if i < len(plan)-1 {
			used += marks
		}
	}

	// last step absorbs the rounding remainder
	last := totalMarks - used
	if last < 1 {
		// can only happen when min-1 bumps overshoot on tiny totals;
		// take the difference out of the largest earlier step
		deficit := 1 - last
		for i := range steps[:len(steps)-1] {
			if steps[i].Marks > deficit {
				steps[i].Marks -= deficit
				break
			}
		}
		last = 1
	}
	steps[len(steps)-1].Marks = last

	return steps
}
