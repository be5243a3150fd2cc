package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// resource implements list/get/create/update/delete for one entity type
// mounted at resourcePath.
type resource[T any] struct {
	httpClient   *http.Client
	resourcePath string
	noun         string
}

func newResource[T any](httpClient *http.Client, resourcePath, noun string) *resource[T] {
	return &resource[T]{
		httpClient:   httpClient,
		resourcePath: resourcePath,
		noun:         noun,
	}
}

func (r *resource[T]) entityPath(id string) string {
	return r.resourcePath + "/" + url.PathEscape(id)
}

// list sends the non-empty pairs of filter, order and page as query
// parameters.
func (r *resource[T]) list(ctx context.Context, filter, order paymill.Query, page *paymill.Page) (*paymill.ListResponse[T], error) {
	query := paymill.Values(filter, order, page)

	resp, err := r.httpClient.Get(ctx, r.resourcePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", r.noun, err)
	}

	list, err := paymill.DecodeList[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %ss list response: %w", r.noun, err)
	}

	return list, nil
}

func (r *resource[T]) get(ctx context.Context, id string) (*T, error) {
	err := validation.Required("id", id)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.noun, err)
	}

	resp, err := r.httpClient.Get(ctx, r.entityPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.noun, err)
	}

	return r.decode(resp)
}

func (r *resource[T]) create(ctx context.Context, form url.Values) (*T, error) {
	resp, err := r.httpClient.Post(ctx, r.resourcePath, form)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.noun, err)
	}

	return r.decode(resp)
}

// createAt posts to a sub-path of the resource, e.g. /refunds/{transaction}.
func (r *resource[T]) createAt(ctx context.Context, id string, form url.Values) (*T, error) {
	err := validation.Required("id", id)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.noun, err)
	}

	resp, err := r.httpClient.Post(ctx, r.entityPath(id), form)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.noun, err)
	}

	return r.decode(resp)
}

func (r *resource[T]) update(ctx context.Context, id string, form url.Values) (*T, error) {
	err := validation.Required("id", id)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.noun, err)
	}

	resp, err := r.httpClient.Put(ctx, r.entityPath(id), form)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.noun, err)
	}

	return r.decode(resp)
}

// delete reports false, without error, when the entity does not exist.
func (r *resource[T]) delete(ctx context.Context, id string, form url.Values) (bool, error) {
	err := validation.Required("id", id)
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", r.noun, err)
	}

	_, err = r.httpClient.Delete(ctx, r.entityPath(id), form)
	if err != nil {
		if paymill.IsNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("deleting %s: %w", r.noun, err)
	}

	return true, nil
}

func (r *resource[T]) decode(resp *http.Response) (*T, error) {
	entity, err := paymill.DecodeEntity[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", r.noun, err)
	}

	return entity, nil
}
