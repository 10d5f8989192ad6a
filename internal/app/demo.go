package app

import "github.com/zelkova-tui/zelkova/internal/types"

// demoToasts returns the sample notifications seeded by --demo.
func demoToasts() []types.Toast {
	return []types.Toast{
		{Text: "Your edited image was saved!", Icon: "😍", Severity: types.SeveritySuccess},
		{Text: "Disk usage is above 90% on the build volume", Icon: "🚨", Severity: types.SeverityWarning},
		{
			Text: "The nightly export finished with 3 skipped records. " +
				"Records are skipped when their source rows were modified while " +
				"the export was running; they will be retried automatically on " +
				"the next run, and no manual action is required unless the same " +
				"records are skipped three runs in a row.",
			Severity: types.SeverityDefault,
		},
	}
}

// nextDemoToast cycles through the samples for the test-toast key.
func nextDemoToast(n int) types.Toast {
	samples := demoToasts()
	return samples[n%len(samples)]
}
