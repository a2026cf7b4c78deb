package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	appcases "github.com/census-rm/caseapi/internal/application/cases"
	appuacqid "github.com/census-rm/caseapi/internal/application/uacqid"
	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/questionnaire"
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/census-rm/caseapi/internal/domain/uacqid"
	"github.com/census-rm/caseapi/internal/infrastructure/event"
	"github.com/census-rm/caseapi/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGenerator stands in for the external UAC/QID generation service
type fakeGenerator struct {
	uac      string
	qid      string
	err      error
	lastType questionnaire.Type
}

func (g *fakeGenerator) Generate(_ context.Context, questionnaireType questionnaire.Type) (string, string, error) {
	g.lastType = questionnaireType
	if g.err != nil {
		return "", "", g.err
	}
	return g.uac, g.qid, nil
}

// fixture wires real services over an in-memory database behind the routes
// the server exposes, so tests drive the same path production requests take.
type fixture struct {
	engine    *gin.Engine
	db        *gorm.DB
	caseRepo  *persistence.GormCaseRepository
	linkRepo  *persistence.GormUacQidLinkRepository
	generator *fakeGenerator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cases.Case{},
		&uacqid.UacQidLink{},
		&uacqid.CaseEvent{},
		&shared.OutboxEntry{},
	))

	serializer := event.NewEventSerializer()
	event.RegisterAllEvents(serializer)

	caseRepo := persistence.NewGormCaseRepository(db)
	linkRepo := persistence.NewGormUacQidLinkRepository(db, event.NewOutboxPublisher(serializer))
	generator := &fakeGenerator{uac: "abcd1234efgh5678", qid: "0120000000000100"}

	caseService := appcases.NewCaseService(caseRepo, linkRepo)
	uacQidService := appuacqid.NewUacQidService(linkRepo, caseRepo, generator)

	caseHandler := NewCaseHandler(caseService, uacQidService)
	uacQidHandler := NewUacQidHandler(uacQidService)

	engine := gin.New()
	casesGroup := engine.Group("/cases")
	casesGroup.GET("/uprn/:uprn", caseHandler.GetByUPRN)
	casesGroup.GET("/ref/:caseRef", caseHandler.GetByCaseRef)
	casesGroup.GET("/:caseId", caseHandler.GetByID)
	casesGroup.GET("/:caseId/qid", caseHandler.GetQidForCase)

	qidsGroup := engine.Group("/qids")
	qidsGroup.GET("/:qid", uacQidHandler.GetByQID)
	qidsGroup.PUT("/link", uacQidHandler.Link)

	engine.POST("/uacqid/create", uacQidHandler.Create)

	return &fixture{
		engine:    engine,
		db:        db,
		caseRepo:  caseRepo,
		linkRepo:  linkRepo,
		generator: generator,
	}
}

func (f *fixture) storeCase(t *testing.T, caseRef int64, caseType cases.CaseType, addressLevel cases.AddressLevel, region string) *cases.Case {
	t.Helper()
	c, err := cases.NewCase(caseRef, caseType, addressLevel, region, uuid.New())
	require.NoError(t, err)
	require.NoError(t, f.caseRepo.Save(context.Background(), c))
	return c
}

func (f *fixture) storePair(t *testing.T, qid, uac string) *uacqid.UacQidLink {
	t.Helper()
	link, err := uacqid.NewUacQidLink(qid, uac)
	require.NoError(t, err)
	require.NoError(t, f.linkRepo.Save(context.Background(), link))
	return link
}

func (f *fixture) request(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return f.request(t, http.MethodGet, path, nil)
}

func (f *fixture) outboxEntries(t *testing.T) []shared.OutboxEntry {
	t.Helper()
	var entries []shared.OutboxEntry
	require.NoError(t, f.db.Find(&entries).Error)
	return entries
}
