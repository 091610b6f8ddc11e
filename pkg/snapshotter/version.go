package snapshotter

// Kind is the resource kind for host snapshots.
const Kind = "SystemInfo"
