package render

// Capabilities describes the optional constructs a dialect can express.
// Renderers do not consult it; dialect methods fail on their own. It exists so
// callers such as generators can choose a tree shape up front.
type Capabilities struct {
	StoredProcedures     bool // CREATE PROCEDURE ... AS BEGIN ... END
	VariableDeclarations bool // DECLARE @v TYPE
	Top                  bool // SELECT TOP n
	LockHints            bool // WITH (NOLOCK)
}
