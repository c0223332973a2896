package commands

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/miekg/dns"

	"github.com/routerctl/routerctl/internal/config"
	"github.com/routerctl/routerctl/internal/log"
)

const dnsQueryTimeout = 3 * time.Second

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.DNSServer, "dns-server", "", "Resolve the API host against this DNS server instead of the system resolver")

	return gc
}

// CheckCommand verifies the local setup: the config file parses and
// validates, the API host resolves, and the endpoint answers HTTP.
type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	DNSServer string
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *CheckCommand) Run() error {
	log.Infof("Running check...")
	hasFailures := false

	cfg, err := loadAndValidateConfigOrFail(g.ctx.ConfigPath)
	if err != nil {
		log.Errorf("Configuration: %v", err)
		return fmt.Errorf("check failed")
	}
	log.Infof("Configuration is valid (%s)", cfg.ConfigFilePath())

	g.printConfig(cfg)

	endpoint, err := url.Parse(cfg.API.Endpoint)
	if err != nil || endpoint.Hostname() == "" {
		log.Errorf("API endpoint %q is not a valid URL", cfg.API.Endpoint)
		return fmt.Errorf("check failed")
	}

	host := endpoint.Hostname()
	if net.ParseIP(host) != nil {
		log.Infof("API host %s is an IP address, skipping DNS resolution", host)
	} else if err := g.checkDNS(host); err != nil {
		log.Errorf("DNS resolution of %s failed: %v", host, err)
		hasFailures = true
	}

	if err := g.checkEndpoint(cfg); err != nil {
		log.Errorf("API endpoint %s is not reachable: %v", cfg.API.Endpoint, err)
		hasFailures = true
	}

	if hasFailures {
		log.Errorf("Check completed with failures")
		return fmt.Errorf("check failed")
	}

	log.Infof("Check completed successfully")
	return nil
}

// printConfig dumps the effective configuration with the API token masked.
func (g *CheckCommand) printConfig(cfg *config.Config) {
	redacted := *cfg
	if cfg.API != nil && cfg.API.Token != "" {
		api := *cfg.API
		api.Token = "********"
		redacted.API = &api
	}

	serialized, err := redacted.SerializeConfig()
	if err != nil {
		log.Errorf("Failed to serialize config: %v", err)
		return
	}

	log.Infof("---------------- Configuration START -----------------")
	os.Stdout.Write(serialized.Bytes())
	log.Infof("----------------- Configuration END ------------------")
}

// checkDNS resolves host, either through the system resolver or through the
// DNS server given with --dns-server.
func (g *CheckCommand) checkDNS(host string) error {
	if g.DNSServer == "" {
		addrs, err := net.LookupHost(host)
		if err != nil {
			return err
		}
		log.Infof("API host %s resolves to %v (system resolver)", host, addrs)
		return nil
	}

	server := g.DNSServer
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}

	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(host), dns.TypeA)

	client := &dns.Client{
		Net:     "udp",
		Timeout: dnsQueryTimeout,
	}

	ctx, cancel := context.WithTimeout(context.Background(), dnsQueryTimeout)
	defer cancel()

	resp, _, err := client.ExchangeContext(ctx, req, server)
	if err != nil {
		return err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return fmt.Errorf("server %s answered %s", server, dns.RcodeToString[resp.Rcode])
	}
	if len(resp.Answer) == 0 {
		return fmt.Errorf("server %s returned no A records", server)
	}

	log.Infof("API host %s resolves via %s (%d answer(s))", host, server, len(resp.Answer))
	return nil
}

// checkEndpoint verifies the API endpoint answers HTTP at all. Any status
// code counts: reachability is the question here, not authorization.
func (g *CheckCommand) checkEndpoint(cfg *config.Config) error {
	httpClient := &http.Client{Timeout: cfg.API.Timeout()}

	req, err := http.NewRequest(http.MethodGet, cfg.API.Endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Infof("API endpoint %s is reachable (HTTP %d)", cfg.API.Endpoint, resp.StatusCode)
	return nil
}
