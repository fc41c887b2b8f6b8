// Package answer turns retrieved context into a grounded natural-language
// recommendation.
//
// The prompt constrains the model to the supplied context chunks and
// instructs it to suggest 2-4 items, substituting closest alternatives
// rather than refusing. Generation runs against a primary provider with a
// single fallback attempt on any failure.
package answer
