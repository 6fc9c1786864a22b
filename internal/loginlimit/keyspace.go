package loginlimit

// Keyspace identifies one of the two independent attempt tracking domains.
type Keyspace int

const (
	KeyspaceAddress Keyspace = iota
	KeyspaceUsername
)

var keyspaces = []Keyspace{KeyspaceAddress, KeyspaceUsername}

func (k Keyspace) String() string {
	switch k {
	case KeyspaceAddress:
		return "address"
	case KeyspaceUsername:
		return "username"
	default:
		return "unknown"
	}
}
