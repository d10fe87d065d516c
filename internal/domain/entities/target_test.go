package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

func TestNewTargetRef(t *testing.T) {
	ref, err := entities.NewTargetRef("h1", "")
	require.NoError(t, err)
	assert.Equal(t, entities.HospitalTarget("h1"), ref)
	assert.True(t, ref.IsHospital())
	assert.Equal(t, "hospital_id", ref.Column())
	assert.Equal(t, "hospitals", ref.Table())

	ref, err = entities.NewTargetRef("", "s1")
	require.NoError(t, err)
	assert.Equal(t, entities.ServiceTarget("s1"), ref)
	assert.Equal(t, "service_id", ref.Column())
	assert.Equal(t, "services", ref.Table())

	_, err = entities.NewTargetRef("", "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNeitherSet))

	_, err = entities.NewTargetRef("h1", "s1")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeBothSet))
}

func TestTargetRef_Validate(t *testing.T) {
	assert.NoError(t, entities.HospitalTarget("h1").Validate())
	assert.NoError(t, entities.ServiceTarget("s1").Validate())
	assert.True(t, apperrors.HasCode(entities.TargetRef{}.Validate(), apperrors.CodeNeitherSet))
	assert.True(t, apperrors.HasCode(entities.HospitalTarget("").Validate(), apperrors.CodeNeitherSet))
}

func TestTargetRef_Columns(t *testing.T) {
	hospitalID, serviceID := entities.HospitalTarget("h1").Columns()
	require.NotNil(t, hospitalID)
	assert.Equal(t, "h1", *hospitalID)
	assert.Nil(t, serviceID)

	hospitalID, serviceID = entities.ServiceTarget("s1").Columns()
	assert.Nil(t, hospitalID)
	require.NotNil(t, serviceID)
	assert.Equal(t, "s1", *serviceID)
}

func TestTargetRef_JSON(t *testing.T) {
	data, err := json.Marshal(entities.ServiceTarget("s1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"hospital":null,"service":"s1"}`, string(data))

	var ref entities.TargetRef
	require.NoError(t, json.Unmarshal([]byte(`{"hospital":"h1"}`), &ref))
	assert.Equal(t, entities.HospitalTarget("h1"), ref)

	err = json.Unmarshal([]byte(`{"hospital":"h1","service":"s1"}`), &ref)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeBothSet))

	err = json.Unmarshal([]byte(`{}`), &ref)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNeitherSet))
}

func TestParseTargetKind(t *testing.T) {
	kind, err := entities.ParseTargetKind("service")
	require.NoError(t, err)
	assert.Equal(t, entities.TargetService, kind)

	_, err = entities.ParseTargetKind("clinic")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestAttachmentValidation(t *testing.T) {
	comment := &entities.Comment{Text: "fine", Attachment: entities.Attachment{AuthorID: "u1"}}
	assert.True(t, apperrors.HasCode(comment.Validate(), apperrors.CodeNeitherSet))

	comment.Target = entities.HospitalTarget("h1")
	assert.NoError(t, comment.Validate())

	comment.Text = "   "
	assert.True(t, apperrors.HasCode(comment.Validate(), apperrors.CodeInvalidInput))

	rank := &entities.Rank{Value: 11, Attachment: entities.Attachment{Target: entities.ServiceTarget("s1")}}
	assert.True(t, apperrors.HasCode(rank.Validate(), apperrors.CodeOutOfRange))

	rank.Value = 10
	assert.NoError(t, rank.Validate())
}

func TestLabels(t *testing.T) {
	hospital := &entities.Hospital{Listing: entities.Listing{Name: "Saint Petersburg City Hospital", AverageRank: 7.3}}
	assert.Equal(t, "Saint Petersburg Cit (7.3)", hospital.Label())

	hospital.AverageRank = 10
	assert.Equal(t, "Saint Petersburg Cit (10)", hospital.Label())

	service := &entities.Service{Listing: entities.Listing{Name: "MRI"}}
	assert.Equal(t, "MRI - Clinic (0.0)", service.Label("Clinic"))

	summary := entities.TargetSummary{Target: entities.ServiceTarget("s1"), Name: "MRI", HospitalName: "Clinic"}
	assert.Equal(t, "anna - MRI (Clinic)", summary.Describe("anna"))

	summary = entities.TargetSummary{Target: entities.HospitalTarget("h1"), Name: "Клиника на Невском проспекте"}
	assert.Equal(t, "anna - Клиника на Невском п", summary.Describe("anna"))
}
