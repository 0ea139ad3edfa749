package memory

// referenceRule constrains how the model may use injected context: only for
// resolving references, never for answering the stale question instead of the
// current one.
const referenceRule = "Use this context only to resolve references in the current question " +
	"(for example pronouns or phrases like \"those\", \"them\" or \"the previous answer\"). " +
	"Always classify and generate for the current question, never for the earlier one."

// Augment merges a stage's base prompt with the summarized memory context.
// When the context is empty the base prompt is returned unchanged, so
// first-turn prompts stay byte-identical to the no-memory baseline.
func Augment(base, memoryContext string) string {
	if memoryContext == "" {
		return base
	}
	return base + "\n\nConversation context:\n" + memoryContext + "\n" + referenceRule
}
