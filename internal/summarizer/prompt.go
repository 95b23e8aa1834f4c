package summarizer

import "fmt"

// MaxPromptContentChars is a hard cut, not sentence-aware.
const MaxPromptContentChars = 3000

const promptTemplate = `
    You are a highly skilled content summarizer, capable of distilling complex information into clear, concise, and engaging summaries. Your goal is to create a summary that captures the essential information while maintaining readability and coherence.

    **Instructions:**
    - Create a well-structured summary that captures the main points and key details
    - Maintain a clear and engaging writing style that makes complex topics accessible
    - Include the most important facts, dates, and figures when relevant
    - Break down the summary into 2-3 concise paragraphs for better readability
    - Aim for a summary length of about 150-200 words
    - Ensure the summary flows naturally and remains engaging throughout
    - Avoid unnecessary technical jargon unless essential to understanding
    - End with a sentence that captures the broader significance or context

    **Content to summarize:**
    %s

    Write a clear, engaging summary that makes this information accessible while maintaining accuracy and key details.
    `

func BuildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, truncate(content, MaxPromptContentChars))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
