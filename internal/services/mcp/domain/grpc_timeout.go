package domain

import "time"

// grpcCallTimeout caps the time for a single converter call from a tool handler.
const grpcCallTimeout = 5 * time.Second
