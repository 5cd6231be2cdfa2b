package loader

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DefaultCypher reads every ROUTE relationship between Location nodes.
const DefaultCypher = `MATCH (a:Location)-[r:ROUTE]->(b:Location)
RETURN a.name AS from, b.name AS to, r.seconds AS weight
ORDER BY a.name, b.name`

// Record is one result row keyed by column name.
type Record map[string]any

// Result holds every row returned by a query.
type Result struct {
	Records []Record
}

// Client is the subset of a graph-database session the loader needs.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	Close(ctx context.Context) error
}

// Neo4jOptions configures the Bolt connection.
type Neo4jOptions struct {
	URI            string
	Username       string
	Password       string
	Database       string
	MaxConnections int
}

// NewNeo4jClient opens a Bolt driver and verifies connectivity.
func NewNeo4jClient(ctx context.Context, opts Neo4jOptions) (Client, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("loader: create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("loader: verify neo4j connectivity: %w", err)
	}

	return &neo4jClient{driver: driver, database: opts.Database}, nil
}

type neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func (c *neo4jClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return Result{}, err
	}

	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			record[key] = value
		}
		records = append(records, record)
	}
	if err := res.Err(); err != nil {
		return Result{}, err
	}

	return Result{Records: records}, nil
}

func (c *neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Neo4jSource reads edges with a Cypher query returning from, to and
// weight columns.
type Neo4jSource struct {
	Client Client
	Cypher string // DefaultCypher when empty
	Params map[string]any
}

// Edges runs the query and converts each row.
func (s Neo4jSource) Edges(ctx context.Context) ([]Edge, error) {
	cypher := s.Cypher
	if cypher == "" {
		cypher = DefaultCypher
	}
	res, err := s.Client.ExecuteRead(ctx, cypher, s.Params)
	if err != nil {
		return nil, fmt.Errorf("loader: neo4j query: %w", err)
	}

	edges := make([]Edge, 0, len(res.Records))
	for i, rec := range res.Records {
		e, err := recordEdge(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// Describe implements Source.
func (s Neo4jSource) Describe() string { return "neo4j" }

func recordEdge(rec Record) (Edge, error) {
	from, ok1 := rec["from"].(string)
	to, ok2 := rec["to"].(string)
	if !ok1 || !ok2 || from == "" || to == "" {
		return Edge{}, fmt.Errorf("%w: from/to must be non-empty strings", ErrBadRecord)
	}

	var w float64
	switch v := rec["weight"].(type) {
	case float64:
		w = v
	case int64:
		w = float64(v)
	default:
		return Edge{}, fmt.Errorf("%w: weight has type %T", ErrBadRecord, v)
	}
	if w < 0 || w != w {
		return Edge{}, fmt.Errorf("%w: weight %v", ErrBadRecord, w)
	}

	return Edge{From: from, To: to, Weight: w}, nil
}
