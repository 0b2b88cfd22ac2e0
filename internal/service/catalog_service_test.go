package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptpilot/internal/domain"
	"promptpilot/internal/service"
	"promptpilot/mocks"
)

func storedDocType(sessionID uuid.UUID, typeID, label string) domain.UserDocumentType {
	goals, _ := json.Marshal([]domain.Goal{{
		ID:    "extract_all",
		Label: "Extract everything",
		SuggestedFields: []domain.Field{
			{ID: "ref_no", Label: "Reference Number"},
		},
	}})
	return domain.UserDocumentType{
		SessionID: sessionID,
		TypeID:    typeID,
		Label:     label,
		Icon:      "file",
		Goals:     goals,
	}
}

func TestCatalogForSession_MergesStoredTypes(t *testing.T) {
	sessionID := uuid.New()
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	docTypeRepo.On("ListBySession", mock.Anything, sessionID).
		Return([]domain.UserDocumentType{
			storedDocType(sessionID, "customs_declaration", "Customs Declaration"),
		}, nil)

	svc := service.NewCatalogService(docTypeRepo)
	cat, err := svc.CatalogForSession(context.Background(), sessionID)
	require.NoError(t, err)

	dt, ok := cat.LookupDocumentType("customs_declaration")
	require.True(t, ok)
	assert.True(t, dt.IsUserDefined)
	assert.Equal(t, "Customs Declaration", dt.Label)

	// Built-ins always remain present underneath the overlay.
	_, ok = cat.LookupDocumentType("invoice")
	assert.True(t, ok)
}

func TestCatalogForSession_SkipsCorruptRows(t *testing.T) {
	sessionID := uuid.New()
	corrupt := storedDocType(sessionID, "broken", "Broken Type")
	corrupt.Goals = json.RawMessage(`{not json`)
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	docTypeRepo.On("ListBySession", mock.Anything, sessionID).
		Return([]domain.UserDocumentType{corrupt}, nil)

	svc := service.NewCatalogService(docTypeRepo)
	cat, err := svc.CatalogForSession(context.Background(), sessionID)
	require.NoError(t, err)

	_, ok := cat.LookupDocumentType("broken")
	assert.False(t, ok)
}

func TestCreateDocumentType_RejectsBuiltinID(t *testing.T) {
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	svc := service.NewCatalogService(docTypeRepo)

	_, err := svc.CreateDocumentType(context.Background(), uuid.New(), service.CreateDocTypeInput{
		ID:    "invoice",
		Label: "My Own Invoice",
		Goals: []domain.Goal{{ID: "g", Label: "g"}},
	})

	assert.ErrorIs(t, err, domain.ErrBuiltinImmutable)
	docTypeRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCreateDocumentType_RejectsBuiltinLabel(t *testing.T) {
	svc := service.NewCatalogService(new(mocks.MockUserDocTypeRepo))

	_, err := svc.CreateDocumentType(context.Background(), uuid.New(), service.CreateDocTypeInput{
		ID:    "my_invoice",
		Label: "Invoice",
		Goals: []domain.Goal{{ID: "g", Label: "g"}},
	})

	assert.ErrorIs(t, err, domain.ErrBuiltinImmutable)
}

func TestCreateDocumentType_RejectsDuplicateSessionLabel(t *testing.T) {
	sessionID := uuid.New()
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	docTypeRepo.On("ListBySession", mock.Anything, sessionID).
		Return([]domain.UserDocumentType{
			storedDocType(sessionID, "customs_declaration", "Customs Declaration"),
		}, nil)

	svc := service.NewCatalogService(docTypeRepo)
	_, err := svc.CreateDocumentType(context.Background(), sessionID, service.CreateDocTypeInput{
		ID:    "another_id",
		Label: "Customs Declaration",
		Goals: []domain.Goal{{ID: "g", Label: "g"}},
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateDocumentType)
}

func TestCreateDocumentType_UpsertsAndResolvesIcon(t *testing.T) {
	sessionID := uuid.New()
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	docTypeRepo.On("ListBySession", mock.Anything, sessionID).
		Return([]domain.UserDocumentType{}, nil)
	docTypeRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(row *domain.UserDocumentType) bool {
		return row.TypeID == "customs_declaration" && row.Icon == "file"
	})).Return(nil)

	svc := service.NewCatalogService(docTypeRepo)
	dt, err := svc.CreateDocumentType(context.Background(), sessionID, service.CreateDocTypeInput{
		ID:    "customs_declaration",
		Label: "Customs Declaration",
		Icon:  "not-a-real-icon",
		Goals: []domain.Goal{{ID: "extract_all", Label: "Extract everything"}},
	})

	require.NoError(t, err)
	assert.True(t, dt.IsUserDefined)
	assert.Equal(t, domain.Icon("file"), dt.Icon)
	docTypeRepo.AssertExpectations(t)
}

func TestDeleteDocumentType_BuiltinIsImmutable(t *testing.T) {
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	svc := service.NewCatalogService(docTypeRepo)

	err := svc.DeleteDocumentType(context.Background(), uuid.New(), "bank_statement")

	assert.ErrorIs(t, err, domain.ErrBuiltinImmutable)
	docTypeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteDocumentType_DeletesUserType(t *testing.T) {
	sessionID := uuid.New()
	docTypeRepo := new(mocks.MockUserDocTypeRepo)
	docTypeRepo.On("Delete", mock.Anything, sessionID, "customs_declaration").Return(nil)

	svc := service.NewCatalogService(docTypeRepo)
	require.NoError(t, svc.DeleteDocumentType(context.Background(), sessionID, "customs_declaration"))
	docTypeRepo.AssertExpectations(t)
}

func TestListOutputFormats_BuiltinsOnly(t *testing.T) {
	svc := service.NewCatalogService(new(mocks.MockUserDocTypeRepo))
	formats := svc.ListOutputFormats()
	require.Len(t, formats, 3)
	assert.Equal(t, domain.FormatCSV, formats[0].ID)
}
