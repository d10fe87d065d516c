package handlers

import (
	"net/http"

	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// targetKey returns the route segment naming the target: the slug of a
// hospital or the id of a service
func targetKey(r *http.Request, kind entities.TargetKind) string {
	if kind == entities.TargetHospital {
		return r.PathValue("slug")
	}
	return r.PathValue("id")
}

func listOptions(r *http.Request) (services.ListOptions, error) {
	limit, offset, err := pagination(r)
	if err != nil {
		return services.ListOptions{}, err
	}
	return services.ListOptions{
		Ordering: repositories.ParseOrdering(r.URL.Query().Get("ordering")),
		Limit:    limit,
		Offset:   offset,
	}, nil
}
