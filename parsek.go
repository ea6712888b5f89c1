// Package parsek is the official Go SDK for the Parsek AI API.
//
// Parsek performs AI-driven data extraction from URLs and raw text, runs
// published automation apps, and reports account credit balance. The SDK
// covers the full v1 REST surface with typed requests and responses.
//
// # Quick Start
//
//	client := parsek.NewClient(os.Getenv("PARSEK_API_KEY"))
//
//	resp, err := client.Extract(ctx, parsek.NewExtractURLRequest(
//		[]string{"https://example.com/products"},
//		"List every product name and price",
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(resp.Data)
//
// # Configuration
//
// The client is configured with functional options at construction and is
// immutable afterwards:
//
//	client := parsek.NewClient(apiKey,
//		parsek.WithBaseURL("https://api.eu.parsek.ai"),
//		parsek.WithTimeout(2*time.Minute),
//	)
//
// # Error Handling
//
// Every failed call returns exactly one of three error kinds, matchable
// with errors.As:
//
//   - *TransportError: the request never completed (timeout, DNS,
//     connection refused). The original network error is wrapped.
//   - *APIError: the Service answered with a non-2xx status. Carries the
//     status code and the Service's error payload when present.
//   - *DecodeError: a 2xx body did not match the expected shape.
//
// The SDK performs no retries; callers own retry and throttling policy.
//
// # Thread Safety
//
// A Client is safe for concurrent use by multiple goroutines. Calls are
// independent and share no mutable state.
//
// Access tokens for the Parsek financial-data API are issued by the
// finauth subpackage.
package parsek
