package app

import (
	"fmt"

	"github.com/blackwell-systems/studypulse/internal/output"
	"github.com/blackwell-systems/studypulse/internal/recommend"
)

func renderRecommendations(recs []recommend.Recommendation) {
	if len(recs) == 0 {
		fmt.Println(output.Section("Recommendations"))
		fmt.Println()
		fmt.Println(" No recommendations. Keep doing what you're doing!")
		return
	}

	fmt.Println(output.Section("Recommendations"))
	fmt.Println()

	for i, r := range recs {
		fmt.Printf(" #%d %s %s\n", i+1, stylePriority(r.Priority), output.StyleBold.Render(r.Title))
		fmt.Printf("    %s\n", r.Description)
		if flagVerbose {
			fmt.Printf("    %s\n", output.StyleMuted.Render("why: "+r.Reasoning))
		}
		fmt.Println()
	}
}

func priorityLabel(priority int) string {
	switch priority {
	case recommend.PriorityHigh:
		return "[HIGH]"
	case recommend.PriorityMedium:
		return "[MEDIUM]"
	case recommend.PriorityLow:
		return "[LOW]"
	default:
		return "[UNKNOWN]"
	}
}

func stylePriority(priority int) string {
	label := priorityLabel(priority)
	switch priority {
	case recommend.PriorityHigh:
		return output.StyleError.Render(label)
	case recommend.PriorityMedium:
		return output.StyleWarning.Render(label)
	default:
		return output.StyleMuted.Render(label)
	}
}
