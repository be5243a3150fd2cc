// Package paymillclient provides the primary entry point for constructing a
// PAYMILL API client that implements the paymill.API interface.
//
// It layers configuration and the HTTP transport on top of the resource
// interfaces and types defined in the paymill package. Most applications
// should import paymillclient to build a client, then use the returned
// paymill.API to access resource-specific clients, for example Offers(),
// Subscriptions() or Transactions().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/fivetwenty-io/paymill-go/pkg/paymill"
//	  "github.com/fivetwenty-io/paymill-go/pkg/paymillclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just the private key.
//	  api, err := paymillclient.NewWithAPIKey("<private key>")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with retries and a custom endpoint:
//	  api, err = paymillclient.New(&paymill.Config{
//	    APIKey:       "<private key>",
//	    BaseURL:      "api.paymill.com/v2.1/",
//	    RetryMax:     3,
//	    RetryWaitMin: 500 * time.Millisecond,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  tx, err := api.Transactions().Create(ctx, &paymill.TransactionCreateRequest{
//	    Amount:   4200,
//	    Currency: "EUR",
//	    Token:    "<bridge token>",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = tx
//	}
//
// Endpoint normalization
//
// New trims a trailing slash from BaseURL and prefixes "https://" when no
// scheme is given. An empty BaseURL selects the public endpoint.
package paymillclient
