package ai

import "strings"

// instructionHeader is the behavioral contract sent as the first turn of
// every assistant conversation. The model must ground its answers in the
// supplied notes and respond in a restricted HTML subset only; note
// timestamps never reach the model, and the instruction forbids inventing
// them.
const instructionHeader = `You are a helpful assistant that answers questions about a user's notes.
- Only answer based on the notes provided.
- Be succinct, not verbose.
- Always respond with clean, valid HTML only (<p>, <strong>, <ul>, <li>, <h1>-<h6>, <br>).
- Do NOT add metadata like createdAt or updatedAt unless the note text itself mentions it.

Here are the user's notes:
`

// FormatNotes renders note texts as a bullet list, one "- <text>" line per
// note, preserving the given order (callers pass newest first).
func FormatNotes(texts []string) string {
	lines := make([]string, 0, len(texts))
	for _, text := range texts {
		lines = append(lines, "- "+text)
	}

	return strings.Join(lines, "\n")
}

// BuildInstruction composes the instruction turn text: the behavioral rules
// followed by the formatted note bullet list.
func BuildInstruction(noteTexts []string) string {
	return instructionHeader + FormatNotes(noteTexts)
}
