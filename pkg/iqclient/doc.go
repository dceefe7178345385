// Package iqclient provides the primary entry point for constructing an
// InvoiceIQ API client that implements the invoiceiq.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the invoiceiq package. Most applications
// should import iqclient to build a client, then use the returned
// invoiceiq.Client to access resource-specific clients, for example
// Validations(), Transformations(), and Generations().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
//	  "github.com/AstrowareConception/invoiceiq-sdk-go/pkg/iqclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: the hosted endpoint with an API key.
//	  cli, err := iqclient.NewWithAPIKey("https://api.invoiceiq.fr", "your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  cli, err = iqclient.New(&invoiceiq.Config{
//	    BaseURL: "https://api.invoiceiq.fr",
//	    APIKey:  "your-api-key",
//	    // alternatively:
//	    // BearerToken: "eyJhbGciOi...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Submit a document and wait for the job to finish.
//	  file, err := os.Open("invoice.pdf")
//	  if err != nil { log.Fatal(err) }
//	  defer file.Close()
//
//	  validation, err := cli.Validations().Submit(ctx, &invoiceiq.ValidationSubmitRequest{
//	    File:     file,
//	    Filename: "invoice.pdf",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = validation
//	}
//
// # Polling
//
// Transformations and generations are asynchronous jobs. The Wait methods
// poll job status with a configurable interval, backoff factor, and overall
// wait budget. Defaults can be set once on Config.Poll and overridden per
// call.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey,
// NewWithBearerToken, and NewAnonymous that wrap New with the appropriate
// configuration.
package iqclient
