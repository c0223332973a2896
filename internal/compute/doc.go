// Package compute provides a client for the cloud network routers REST API.
//
// This package enables communication with the regional routers service to list
// and describe router resources and to patch their BGP advertisement and peer
// configuration. It carries the wire model for the subset of the API that
// routerctl touches.
//
// # Features
//
//   - List, get, and patch operations on router resources
//   - Bearer-token authentication
//   - Structured API error decoding (not-found is distinguishable)
//   - Pluggable HTTP transport for testing with mocks
//
// # Example Usage
//
// Creating a client and fetching a router:
//
//	client := compute.NewClient("https://api.example.net", token, nil)
//	router, err := client.GetRouter(ctx, "my-project", "us-central1", "prod-router")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: mode=%s\n", router.Name, router.Bgp.AdvertiseMode)
//
// All methods take a context.Context so callers control request deadlines.
package compute
