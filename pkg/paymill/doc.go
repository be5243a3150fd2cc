// Package paymill provides types, interfaces, and helpers for working with the
// PAYMILL REST API.
//
// # Overview
//
// The paymill package defines the domain types (Offer, Subscription, Client,
// Payment, Transaction, Refund) and the interfaces of the resource clients
// (OffersClient, SubscriptionsClient, ...). A concrete implementation is
// provided by the paymillclient package, which wires configuration,
// transport and authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/paymill-go/pkg/paymill"
//	  "github.com/fivetwenty-io/paymill-go/pkg/paymillclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  api, err := paymillclient.NewWithAPIKey("<private key>")
//	  if err != nil { log.Fatal(err) }
//
//	  offers, err := api.Offers().List(ctx,
//	    paymill.NewOfferFilter().ByAmountGreaterThan(1000),
//	    paymill.NewOfferOrder().ByCreatedAt().Desc(),
//	    paymill.NewPage(20, 0))
//	  if err != nil { log.Fatal(err) }
//	  _ = offers
//	}
//
// # Filters and orders
//
// Each resource has a filter and an order builder. Filter setters keep one
// value per field, so a later call for the same field replaces the earlier
// one. An order has a single active field; selecting another field replaces
// it and Asc/Desc only change the direction.
//
// # Related entities
//
// The API embeds related entities either as full objects or as bare
// identifiers. Such fields are typed Ref[T]: check IsFull before relying on
// anything but ID.
//
// # Errors
//
// Client methods return *ValidationError before any request is sent,
// *TransportError or *CancelledError for network failures,
// *HTTPStatusError for non-success responses and *DecodeError or
// *FormatError for payloads that cannot be decoded. Use errors.As or the
// Is* helpers to tell them apart.
package paymill
