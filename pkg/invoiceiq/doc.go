// Package invoiceiq provides types, interfaces, and helpers for working with
// the InvoiceIQ document API.
//
// # Overview
//
// The invoiceiq package defines the domain types (e.g., TransformationMetadata,
// Job, ValidationReport) and the interfaces for resource-oriented clients
// (ValidationsClient, TransformationsClient, GenerationsClient). A concrete
// implementation of these clients is provided by the iqclient package, which
// wires configuration and transport. Most consumers should import iqclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := iqclient.NewWithAPIKey("https://api.invoiceiq.fr", "my-key")
//	  if err != nil { log.Fatal(err) }
//
//	  file, err := os.Open("invoice.pdf")
//	  if err != nil { log.Fatal(err) }
//	  defer file.Close()
//
//	  receipt, err := cli.Validations().Submit(ctx, &invoiceiq.ValidationSubmitRequest{
//	    File:     file,
//	    Filename: "invoice.pdf",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = receipt
//	}
//
// # Polling jobs
//
// Transformations and generations are asynchronous: submitting one returns a
// Job that moves through pending states until it completes, fails, or is
// canceled. The Wait methods block until a terminal status, honoring the
// backoff and deadline in PollConfig:
//
//	job, err := cli.Transformations().Wait(ctx, jobID, nil)
//	if err != nil { /* handle error */ }
//	_ = job.DownloadURL
//
// WaitForJob accepts any JobFetcher, so the same loop drives both resource
// kinds. A nil PollConfig uses the defaults (1s initial interval, 1.5 backoff
// factor, 60s max wait).
//
// # Errors
//
// API failures are represented by APIError; polling surfaces JobFailedError
// for terminal failures and PollTimeoutError when the deadline is exhausted.
// Helpers such as IsNotFound, IsUnauthorized, IsJobFailed, and IsPollTimeout
// make it easy to branch on common cases.
//
// # Resources
//
// Resource clients follow a consistent submit-and-fetch pattern across the
// three families (validations, transformations, generations). See the
// individual interfaces in resource_clients.go for the full surface area.
package invoiceiq
