package server

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/netcalc/internal/calculation"
	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/output"
	"github.com/valyala/fasthttp"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

var formTemplate = template.Must(template.New("form").Parse(formTemplateSource))

var contentTypes = map[string]string{
	"html":    "text/html; charset=utf-8",
	"json":    "application/json",
	"yaml":    "application/yaml",
	"csv":     "text/csv; charset=utf-8",
	"console": "text/plain; charset=utf-8",
}

// ErrorResponse is the JSON body returned for rejected requests
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Server exposes the calculator behind an HTML form
type Server struct {
	calc     *calculation.NetIncomeCalculator
	reader   *config.FormReader
	currency string
	logger   calculation.Logger
	formPage []byte
}

// New creates a server. A nil logger disables request logging.
func New(calc *calculation.NetIncomeCalculator, reader *config.FormReader, currency string, logger calculation.Logger) (*Server, error) {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	defaults := make(map[string]string, len(config.Fields))
	for _, spec := range config.Fields {
		defaults[spec.Name] = spec.Default
	}
	formPage, err := renderPage(defaults, "")
	if err != nil {
		return nil, err
	}
	return &Server{
		calc:     calc,
		reader:   reader,
		currency: currency,
		logger:   logger,
		formPage: formPage,
	}, nil
}

// renderPage renders the input form filled with values, with result placed under it.
// result must already be escaped HTML.
func renderPage(values map[string]string, result template.HTML) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Fields           []config.FieldSpec
		IncludesVATField string
		Values           map[string]string
		Result           template.HTML
	}{config.Fields, config.FieldIncludesVAT, values, result}
	if err := formTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ListenAndServe serves HTTP on addr until it fails
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("net income estimator listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler routes a single request
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/":
		if !ctx.IsGet() && !ctx.IsHead() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", "")
			return
		}
		ctx.SetContentType(contentTypes["html"])
		ctx.SetBody(s.formPage)
	case "/calculate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", "")
			return
		}
		s.handleCalculate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found", "")
	}
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	format := string(ctx.FormValue("format"))
	if format == "" {
		format = "html"
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Unsupported format: "+format, "")
		return
	}
	// terminal styling has no meaning over HTTP
	if formatter.Name() == "console" {
		formatter = output.ConsoleFormatter{Plain: true}
	}

	fields := make(map[string]string, len(config.Fields))
	for _, spec := range config.Fields {
		if v := ctx.FormValue(spec.Name); v != nil {
			fields[spec.Name] = string(v)
		}
	}

	inputs, err := s.reader.Read(fields)
	if err != nil {
		var inputErr *config.InvalidInputError
		if errors.As(err, &inputErr) {
			s.logger.Warnf("rejected input from %s: %v", ctx.RemoteAddr(), err)
			writeError(ctx, fasthttp.StatusBadRequest, err.Error(), inputErr.Field)
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, err.Error(), "")
		return
	}

	breakdown := s.calc.Compute(inputs)
	body, err := formatter.Format(output.NewReport(breakdown, s.currency))
	if err != nil {
		s.logger.Errorf("format %s: %v", formatter.Name(), err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to render report", "")
		return
	}

	// the html report is shown under the submitted form
	if formatter.Name() == "html" {
		body, err = renderPage(fields, template.HTML(body))
		if err != nil {
			s.logger.Errorf("render form page: %v", err)
			writeError(ctx, fasthttp.StatusInternalServerError, "Failed to render report", "")
			return
		}
	}

	s.logger.Debugf("calculated net income %s for gross %s", breakdown.NetIncome, breakdown.GrossIncome)
	ctx.SetContentType(contentTypes[formatter.Name()])
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message, field string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, err := json.Marshal(ErrorResponse{Status: status, Message: message, Field: field})
	if err != nil {
		ctx.SetBodyString(message)
		return
	}
	ctx.SetBody(body)
}
