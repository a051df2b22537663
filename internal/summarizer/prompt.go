package summarizer

import (
	"fmt"
	"strings"
)

const promptTemplate = `Identify and explain the core theses and insights from this video.

Audience: Write for a crypto-native audience. Use our jargon (e.g., "Fed," "JPOW," "bps," "QT," "TradFi," "liquidity," "FUD," "counterparty risk," etc.).

Format: Use a simple list of standalone bullet points. Don't use two-part bullets.

Specificity/Hedging: Be extremely specific. Do not use hedging language (e.g., avoid words like "likely," "seems," "may," or "suggests"). State facts and conclusions directly. Include specific numbers or figures mentioned in the video (e.g., 25 bps, 76 million, six basis points) where possible.

Style: Speak directly to me in the second person. Do not use timestamps. Do not say "the video says" or "the speaker argues." Just state the key points as facts, as if you are explaining the situation to me yourself.

Summarize this YouTube video: %s
`

// ExtractVideoLink returns the first whitespace-delimited token that
// mentions a YouTube host, or "" when there is none. Tokens are not
// validated as URLs; whatever the user pasted is forwarded as-is.
func ExtractVideoLink(text string) string {
	for _, token := range strings.Fields(strings.TrimSpace(text)) {
		if strings.Contains(token, "youtube.com") || strings.Contains(token, "youtu.be") {
			return token
		}
	}
	return ""
}

// BuildPrompt interpolates the link verbatim into the instruction template.
func BuildPrompt(videoURL string) string {
	return fmt.Sprintf(promptTemplate, videoURL)
}
