package database

import (
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// attachmentRow holds the columns comments and ranks share
type attachmentRow struct {
	authorID   string
	hospitalID sql.NullString
	serviceID  sql.NullString
}

func (r *attachmentRow) dest() []interface{} {
	return []interface{}{&r.authorID, &r.hospitalID, &r.serviceID}
}

// toAttachment rebuilds the target and re-checks the exclusivity rule
func (r *attachmentRow) toAttachment(a *entities.Attachment) error {
	target, err := entities.NewTargetRef(r.hospitalID.String, r.serviceID.String)
	if err != nil {
		return err
	}
	a.AuthorID = r.authorID
	a.Target = target
	return nil
}

// attachmentRecord maps an attachment onto its flat column pair
func attachmentRecord(a *entities.Attachment) goqu.Record {
	hospitalID, serviceID := a.Target.Columns()
	return goqu.Record{
		"author_id":   a.AuthorID,
		"hospital_id": nullString(hospitalID),
		"service_id":  nullString(serviceID),
		"created_at":  a.CreatedAt,
		"updated_at":  a.UpdatedAt,
	}
}

func targetCondition(target entities.TargetRef) exp.Expression {
	return goqu.C(target.Column()).Eq(target.ID)
}

// filterAttachments applies the shared listing filter to a comments or ranks query
func filterAttachments(ds *goqu.SelectDataset, filter repositories.AttachmentFilter) *goqu.SelectDataset {
	ds = ds.Where(targetCondition(filter.Target))

	if filter.AuthorID != "" {
		ds = ds.Where(goqu.C("author_id").Eq(filter.AuthorID))
	}

	if filter.Ordering == repositories.OrderOldestFirst {
		ds = ds.Order(goqu.C("updated_at").Asc(), goqu.C("id").Asc())
	} else {
		ds = ds.Order(goqu.C("updated_at").Desc(), goqu.C("id").Desc())
	}

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}
	return ds
}
