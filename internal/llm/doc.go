// Package llm provides generative-AI clients for ad performance analysis.
// It supports Gemini and OpenAI providers, with rate limiting and strict
// parsing of the structured JSON verdicts the models return.
package llm
