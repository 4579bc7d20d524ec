package ibctesting

// Path contains two endpoints representing two chains connected over account ibc
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for each chain and sets each other as the counterparty
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewEndpoint(chainA)
	endpointB := NewEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}
