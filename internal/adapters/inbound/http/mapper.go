package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toRoute(req RegisterRouteReq) (domain.Route, error) {
	hasPhrases, hasEmbeddings := len(req.Phrases) > 0, len(req.Embeddings) > 0
	switch {
	case hasPhrases && hasEmbeddings:
		return domain.Route{}, domain.NewValidationErr("phrases and embeddings are mutually exclusive")
	case hasPhrases:
		return domain.NewRawRoute(req.Destination, req.Phrases...), nil
	case hasEmbeddings:
		embeddings := make([]domain.Embedding, 0, len(req.Embeddings))
		for _, e := range req.Embeddings {
			embeddings = append(embeddings, domain.Embedding{
				Text:          e.Text,
				Vector:        e.Embedding,
				AuxiliaryData: e.AuxiliaryData,
			})
		}
		return domain.NewPrecomputedRoute(req.Destination, embeddings...), nil
	default:
		return domain.Route{}, domain.NewValidationErr("one of phrases or embeddings is required")
	}
}

func toDestinationResp(d domain.Destination) DestinationResp {
	return DestinationResp{
		Destination: d.Destination,
		Accuracy:    d.Accuracy,
	}
}
