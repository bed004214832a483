// Package lexical builds word-frequency tables from normalized utterances:
// total token counts, distinct vocabulary sizes, and top-N lists, both
// overall and per speaker. Ranking is deterministic; tokens with equal
// counts order by first appearance in the conversation.
package lexical
