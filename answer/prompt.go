package answer

import "strings"

// chunkDelimiter separates grounding chunks inside the prompt.
const chunkDelimiter = "\n\n---\n\n"

const systemInstruction = `You are an AI fashion stylist. You must recommend outfits ONLY using the products listed in the context below.

Rules:
- Always try to suggest 2-4 suitable products from the context.
- If the user's request cannot be matched exactly (e.g. they ask for hoodies but there are only sweatshirts or shorts), recommend the closest alternatives and clearly say they are similar options, not perfect matches.
- Do NOT say "I don't know" as long as there is at least one product in the context. Only say you don't know if the context is completely empty.
- Keep the answer short and focused on why these products match the user's request.`

// BuildPrompt assembles the grounding prompt: the fixed stylist
// instruction, the concatenated context chunks, and the original user
// query. The generated answer is constrained to the supplied context so
// the mention-bonus rerank has something truthful to match against.
func BuildPrompt(query string, chunks []string) string {
	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\nContext:\n")
	b.WriteString(strings.Join(chunks, chunkDelimiter))
	b.WriteString("\n\nUser query: ")
	b.WriteString(query)
	b.WriteString("\n\nNow give a short, friendly recommendation:")
	return b.String()
}
