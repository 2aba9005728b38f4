package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/skulafrica/sitebuilder/apps/api/echo"
	"github.com/skulafrica/sitebuilder/core"
	"github.com/skulafrica/sitebuilder/core/site"
	emailsvc "github.com/skulafrica/sitebuilder/services/email"
	inmemdb "github.com/skulafrica/sitebuilder/storage/database/inmem"
)

var (
	conf     *core.Config
	siteRepo site.Repository

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
)

type stdLogger struct {
	std *log.Logger
}

func (l stdLogger) Debug(msg string, args ...interface{}) { l.std.Println(append([]interface{}{msg}, args...)...) }
func (l stdLogger) Info(msg string, args ...interface{})  { l.std.Println(append([]interface{}{msg}, args...)...) }
func (l stdLogger) Warn(msg string, args ...interface{})  { l.std.Println(append([]interface{}{msg}, args...)...) }
func (l stdLogger) Error(msg string, args ...interface{}) { l.std.Println(append([]interface{}{msg}, args...)...) }
func (l stdLogger) Fatal(msg string, args ...interface{}) { l.std.Fatalln(append([]interface{}{msg}, args...)...) }

func setup(t *testing.T) Server {
	conf = &core.Config{
		TestMode:  true,
		AppName:   "SkulAfrica",
		SecretKey: "test-secret-key",
		Server: core.ServerConfig{
			JWTExpirationDelta: time.Hour,
		},
	}
	logger := stdLogger{std: log.New(os.Stdout, "API-TEST : ", log.LstdFlags)}

	// set up DB & repos
	db := inmemdb.Open()
	siteRepo = inmemdb.NewSiteRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	siteSvc := site.NewService(siteRepo)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	site.InitValidators(validate, translator)

	core.ParseEmailTemplates(conf, logger)

	// set up server
	return NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     logger,
			SiteSvc:    siteSvc,
			MailSvc:    mailSvc,
			Validate:   validate,
			Translator: translator,
		},
	)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, subdomain string) string {
	claims := GetAdminClaims(conf, "admin@test.cd", subdomain)
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decodeConfig(t *testing.T, rec *httptest.ResponseRecorder) site.WebsiteConfig {
	var cfg site.WebsiteConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decodeConfig(): %v", err)
	}
	return cfg
}
