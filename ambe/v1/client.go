package v1

type AmbeClient struct {
	Transport    *Transport
	Attendance   *AttendanceEndpoint
	LocationLogs *LocationLogEndpoint
	MasterData   *MasterDataEndpoint
}

// NewAmbeClient initializes the API client
func NewAmbeClient(baseURL string, token string) *AmbeClient {
	t := NewTransport(baseURL, token)
	return &AmbeClient{
		Transport:    t,
		Attendance:   &AttendanceEndpoint{transport: t},
		LocationLogs: &LocationLogEndpoint{transport: t},
		MasterData:   &MasterDataEndpoint{transport: t},
	}
}

// Online reports whether the central server is reachable.
func (c *AmbeClient) Online() bool {
	return c.Transport.Ping()
}
