package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/mcpserver"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

// DemoFlags contains flags for the demo command
type DemoFlags struct {
	Addr  string
	Log   string
	Debug bool
}

// SetupDemoFlags creates and configures a FlagSet for the demo command.
// Returns the FlagSet and a DemoFlags struct with bound flag variables.
func SetupDemoFlags() (*flag.FlagSet, *DemoFlags) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	flags := &DemoFlags{}

	fs.StringVar(&flags.Addr, "addr", mcpserver.DefaultAddr, "HTTP listen address")
	fs.StringVar(&flags.Log, "log", LogText, "log backend: text, json, zap")
	fs.BoolVar(&flags.Debug, "debug", false, "enable debug logging")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: routemcp demo [flags]\n\n")
		Writef(output, "Run a small users API with the MCP tools mounted at /mcp.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nRoutes:\n")
		Writef(output, "  GET  /users/{user_id}  get a user by ID\n")
		Writef(output, "  POST /users            create a user\n")
		Writef(output, "  GET  /openapi.json     the generated OpenAPI document\n")
		Writef(output, "  POST /mcp              MCP streamable HTTP endpoint\n")
		Writef(output, "  GET  /mcp/tools        server and tool information\n")
	}

	return fs, flags
}

// HandleDemo executes the demo command
func HandleDemo(args []string) error {
	fs, flags := SetupDemoFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, flush, err := NewLogger(flags.Log, flags.Debug)
	if err != nil {
		return err
	}
	defer flush()

	r, err := NewDemoApp(logger)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ListenAndServe(ctx, flags.Addr, r, logger)
}

// demoUser is the body of the demo API's user resources.
type demoUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type demoStore struct {
	mu     sync.Mutex
	users  map[int]demoUser
	nextID int
}

func (s *demoStore) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "user_id must be an integer"})
		return
	}
	s.mu.Lock()
	u, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *demoStore) createUser(w http.ResponseWriter, r *http.Request) {
	var u demoUser
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil || u.Name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "name is required"})
		return
	}
	s.mu.Lock()
	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = u
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, u)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NewDemoApp builds the demo users API with the MCP server mounted at /mcp.
func NewDemoApp(logger introspect.Logger) (chi.Router, error) {
	store := &demoStore{users: map[int]demoUser{}}

	r := route.RecordChi(chi.NewRouter())
	r.Get("/users/{user_id}", store.getUser)
	r.Post("/users", store.createUser)
	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, demoSpec())
	})

	meta, err := schemadoc.FromKinOpenAPI(demoSpec())
	if err != nil {
		return nil, err
	}
	srv, err := mcpserver.New(
		route.FromChi(r, route.WithMetaFromDocument(meta)),
		schemadoc.FromKinFunc(demoSpec),
		mcpserver.WithName("routemcp-demo"),
		mcpserver.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	srv.Mount(r)
	return r, nil
}

// demoSpec builds the OpenAPI document of the demo API.
func demoSpec() *openapi3.T {
	user := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email"))
	user.Required = []string{"id", "name"}

	userCreate := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email"))
	userCreate.Required = []string{"name"}

	problem := openapi3.NewObjectSchema().WithProperty("detail", openapi3.NewStringSchema())

	userRef := openapi3.NewSchemaRef("#/components/schemas/User", nil)
	problemRef := openapi3.NewSchemaRef("#/components/schemas/Problem", nil)

	getUser := openapi3.NewOperation()
	getUser.OperationID = "getUser"
	getUser.Summary = "Get a user by ID."
	getUser.Tags = []string{"users"}
	getUser.AddParameter(openapi3.NewPathParameter("user_id").WithSchema(openapi3.NewIntegerSchema()))
	getUser.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription("The user").WithJSONSchemaRef(userRef))
	getUser.AddResponse(http.StatusNotFound, openapi3.NewResponse().WithDescription("No such user").WithJSONSchemaRef(problemRef))

	createUser := openapi3.NewOperation()
	createUser.OperationID = "createUser"
	createUser.Summary = "Create a new user."
	createUser.Tags = []string{"users"}
	createUser.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/UserCreate", nil))}
	createUser.AddResponse(http.StatusCreated, openapi3.NewResponse().WithDescription("The created user").WithJSONSchemaRef(userRef))
	createUser.AddResponse(http.StatusUnprocessableEntity, openapi3.NewResponse().WithDescription("Invalid body").WithJSONSchemaRef(problemRef))

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: "Demo Users API", Version: "1.0.0"},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/users/{user_id}", &openapi3.PathItem{Get: getUser}),
			openapi3.WithPath("/users", &openapi3.PathItem{Post: createUser}),
		),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"User":       openapi3.NewSchemaRef("", user),
				"UserCreate": openapi3.NewSchemaRef("", userCreate),
				"Problem":    openapi3.NewSchemaRef("", problem),
			},
		},
	}
}
