package client

// Ref is a cached field that points to another record.
type Ref struct {
	ID string
}

// Edge is a cached connection edge.
type Edge struct {
	Cursor string
	NodeID string
}

type connection struct {
	edges       []Edge
	hasNextPage bool
	endCursor   string
}

// cache is the normalized record set. It is not safe for concurrent use.
type cache struct {
	records     map[string]map[string]any
	connections map[string]*connection
}

func newCache() cache {
	return cache{
		records:     make(map[string]map[string]any),
		connections: make(map[string]*connection),
	}
}

func connectionKey(parentID, name string) string {
	return parentID + "." + name
}

func (c cache) clone() cache {
	out := newCache()
	for id, rec := range c.records {
		cp := make(map[string]any, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out.records[id] = cp
	}
	for key, conn := range c.connections {
		out.connections[key] = &connection{
			edges:       append([]Edge(nil), conn.edges...),
			hasNextPage: conn.hasNextPage,
			endCursor:   conn.endCursor,
		}
	}
	return out
}

// write merges obj into the record id. Nested objects carrying an id are
// normalized into their own records; lists are skipped.
func (c cache) write(id string, obj map[string]any) {
	rec, ok := c.records[id]
	if !ok {
		rec = make(map[string]any, len(obj))
		c.records[id] = rec
	}
	for k, v := range obj {
		switch v := v.(type) {
		case map[string]any:
			if nestedID, ok := v["id"].(string); ok {
				c.write(nestedID, v)
				rec[k] = Ref{ID: nestedID}
			}
		case []any:
		default:
			rec[k] = v
		}
	}
}

func (c cache) setConnection(parentID, name string, conn *connection) {
	c.connections[connectionKey(parentID, name)] = conn
}

// appendEdge adds edge to a cached connection. Connections that were never
// fetched are left alone.
func (c cache) appendEdge(parentID, name string, edge Edge) {
	conn, ok := c.connections[connectionKey(parentID, name)]
	if !ok {
		return
	}
	for _, e := range conn.edges {
		if e.NodeID == edge.NodeID {
			return
		}
	}
	conn.edges = append(conn.edges, edge)
}

func (c cache) removeNode(parentID, name, nodeID string) {
	delete(c.records, nodeID)
	conn, ok := c.connections[connectionKey(parentID, name)]
	if !ok {
		return
	}
	edges := conn.edges[:0]
	for _, e := range conn.edges {
		if e.NodeID != nodeID {
			edges = append(edges, e)
		}
	}
	conn.edges = edges
}

func (c cache) invalidate(id string, fields []string) {
	rec := c.records[id]
	for _, f := range fields {
		if rec != nil {
			delete(rec, f)
		}
		delete(c.connections, connectionKey(id, f))
	}
}
