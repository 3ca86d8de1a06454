package services

import (
	"strings"

	"fethink/content"
	"fethink/models"
)

// Status values shared by tags and the results grid.
const (
	statusOK  = "ok"
	statusMid = "mid" // reserved for partial credit; binary detection never emits it
	statusBad = "bad"

	gridSecure     = "✓ Secure"
	gridDeveloping = "◐ Developing"
	gridMissing    = "✗ Missing"
)

const gatedMessage = "Please add more detail and include Role, Task, Context and Format."

// normalizer folds common typographic punctuation to ASCII so substring
// matching is not defeated by curly quotes or long dashes.
var normalizer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Marker applies the fixed FEthink rubric to submitted answers. It is pure:
// the same answer always produces the same result.
type Marker struct {
	pack      *content.Pack
	framework models.Framework
}

var defaultMarker *Marker

// InitRubricService builds the process-wide marker from the content pack.
func InitRubricService(pack *content.Pack) {
	defaultMarker = NewMarker(pack)
}

// MarkAnswer scores an answer with the process-wide marker.
func MarkAnswer(answerText string) models.RubricResult {
	return defaultMarker.Mark(answerText)
}

// NewMarker returns a marker bound to the given content pack.
func NewMarker(pack *content.Pack) *Marker {
	return &Marker{
		pack: pack,
		framework: models.Framework{
			GDPR:   models.FrameworkEntry(pack.Framework.GDPR),
			UNESCO: models.FrameworkEntry(pack.Framework.UNESCO),
			Ofsted: models.FrameworkEntry(pack.Framework.Ofsted),
			JISC:   models.FrameworkEntry(pack.Framework.JISC),
		},
	}
}

// WordCount counts whitespace-separated tokens, ignoring leading, trailing
// and repeated whitespace.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Mark evaluates one submitted answer against the rubric.
func (m *Marker) Mark(answerText string) models.RubricResult {
	wc := WordCount(answerText)
	if wc < m.pack.MinWordsGate {
		return models.RubricResult{
			Gated:     true,
			WordCount: wc,
			Message:   gatedMessage,
		}
	}

	t := normalizer.Replace(strings.ToLower(answerText))

	hasRole := containsAny(t, m.pack.Keywords.Role)
	hasTask := containsAny(t, m.pack.Keywords.Task)
	hasContext := containsAny(t, m.pack.Keywords.Context)
	hasFormat := containsAny(t, m.pack.Keywords.Format)

	present := 0
	for _, hit := range []bool{hasRole, hasTask, hasContext, hasFormat} {
		if hit {
			present++
		}
	}

	boosters := 0
	for _, list := range [][]string{m.pack.Keywords.Budget, m.pack.Keywords.Deadline, m.pack.Keywords.CallToAction} {
		if containsAny(t, list) {
			boosters++
		}
	}

	score := bandScore(present, boosters)

	return models.RubricResult{
		WordCount:     wc,
		Score:         &score,
		Strengths:     strengths(hasRole, hasTask, hasContext, hasFormat, present),
		Tags:          tags(hasRole, hasTask, hasContext, hasFormat),
		Grid:          grid(hasRole, hasTask, hasContext, hasFormat, present),
		Feedback:      feedback(hasRole, hasTask, hasContext, hasFormat, present),
		Framework:     &m.framework,
		ModelAnswer:   &m.pack.ModelAnswer,
		ModelAiLetter: &m.pack.ModelAiLetter,
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// bandScore maps the category presence count to a score band. Boosters raise
// the score within a band but never move the answer to a different band.
func bandScore(present, boosters int) int {
	switch present {
	case 4:
		return 8 + min(2, boosters)
	case 3:
		return 6 + min(1, boosters)
	case 2:
		return 4 + min(1, boosters)
	default:
		return 2
	}
}

func strengths(hasRole, hasTask, hasContext, hasFormat bool, present int) []string {
	out := make([]string, 0, 4)
	if hasRole {
		out = append(out, "You defined a clear role for the AI.")
	}
	if hasTask {
		out = append(out, "You specified what the email should achieve.")
	}
	if hasContext {
		out = append(out, "You included relevant audience context.")
	}
	if hasFormat {
		out = append(out, "You set structure and tone constraints.")
	}
	if len(out) > 3 {
		out = out[:3]
	}
	if present < 2 {
		out = append(out, "You have made a start — build out each FEthink section to strengthen your prompt.")
	}
	return out
}

func tags(hasRole, hasTask, hasContext, hasFormat bool) []models.Tag {
	return []models.Tag{
		{Name: "Role clarity", Status: tagStatus(hasRole)},
		{Name: "Task clarity", Status: tagStatus(hasTask)},
		{Name: "Context clarity", Status: tagStatus(hasContext)},
		{Name: "Format control", Status: tagStatus(hasFormat)},
	}
}

func tagStatus(present bool) string {
	if present {
		return statusOK
	}
	return statusBad
}

func grid(hasRole, hasTask, hasContext, hasFormat bool, present int) *models.Grid {
	structure := gridMissing
	switch {
	case present == 4:
		structure = gridSecure
	case present >= 2:
		structure = gridDeveloping
	}
	return &models.Grid{
		Ethical:         gridStatus(hasRole),
		Impact:          gridStatus(hasTask),
		Legal:           gridStatus(hasContext),
		Recommendations: gridStatus(hasFormat),
		Structure:       structure,
	}
}

func gridStatus(present bool) string {
	if present {
		return gridSecure
	}
	return gridMissing
}

func feedback(hasRole, hasTask, hasContext, hasFormat bool, present int) string {
	if present == 4 {
		return "Excellent — your prompt covers Role, Task, Context and Format clearly."
	}
	var lines []string
	if !hasRole {
		lines = append(lines, "- Tell the AI who it should act as (Role).")
	}
	if !hasTask {
		lines = append(lines, "- State exactly what the email should achieve (Task).")
	}
	if !hasContext {
		lines = append(lines, "- Describe the audience and the situation (Context).")
	}
	if !hasFormat {
		lines = append(lines, "- Set the structure and tone you want (Format).")
	}
	return strings.Join(lines, "\n")
}
