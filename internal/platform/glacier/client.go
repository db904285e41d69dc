package glacier

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/glacier/types"
	"github.com/aws/smithy-go"
)

// DefaultAccountID makes Glacier use the account owning the credentials.
const DefaultAccountID = "-"

// Options configures a Client. Empty fields defer to the AWS SDK defaults
// (environment, shared config files, instance metadata).
type Options struct {
	Region    string
	Profile   string
	AccountID string
	// Endpoint overrides the service endpoint, e.g. for a local emulator.
	Endpoint string
	// AccessKey and SecretKey set static credentials when both are present.
	AccessKey string
	SecretKey string
}

// Client wraps the Glacier client for one account.
type Client struct {
	glacier   *glacier.Client
	accountID string
}

// NewClient creates a new Glacier client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := glacier.NewFromConfig(cfg, func(o *glacier.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return newClient(client, opts.AccountID), nil
}

func newClient(client *glacier.Client, accountID string) *Client {
	if accountID == "" {
		accountID = DefaultAccountID
	}
	return &Client{glacier: client, accountID: accountID}
}

// ListVaults returns every vault of the account, following pagination.
func (c *Client) ListVaults(ctx context.Context) ([]Vault, error) {
	paginator := glacier.NewListVaultsPaginator(c.glacier, &glacier.ListVaultsInput{
		AccountId: aws.String(c.accountID),
	})

	var vaults []Vault
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list vaults: %w", err)
		}
		for _, v := range page.VaultList {
			vaults = append(vaults, c.vaultFrom(v))
		}
	}
	return vaults, nil
}

// DescribeVault returns the named vault.
func (c *Client) DescribeVault(ctx context.Context, name string) (*Vault, error) {
	out, err := c.glacier.DescribeVault(ctx, &glacier.DescribeVaultInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe vault %s: %w", name, err)
	}

	v := c.vaultFrom(types.DescribeVaultOutput{
		VaultName:         out.VaultName,
		VaultARN:          out.VaultARN,
		CreationDate:      out.CreationDate,
		LastInventoryDate: out.LastInventoryDate,
		NumberOfArchives:  out.NumberOfArchives,
		SizeInBytes:       out.SizeInBytes,
	})
	if v.Name == "" {
		v.Name = name
	}
	return &v, nil
}

// ListJobs returns every job of the vault, following pagination.
func (c *Client) ListJobs(ctx context.Context, vaultName string) ([]Job, error) {
	paginator := glacier.NewListJobsPaginator(c.glacier, &glacier.ListJobsInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(vaultName),
	})

	var jobs []Job
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs for vault %s: %w", vaultName, err)
		}
		for _, j := range page.JobList {
			jobs = append(jobs, jobFrom(j))
		}
	}
	return jobs, nil
}

// InitiateInventoryRetrieval starts a JSON inventory-retrieval job and
// returns its id.
func (c *Client) InitiateInventoryRetrieval(ctx context.Context, vaultName string) (string, error) {
	out, err := c.glacier.InitiateJob(ctx, &glacier.InitiateJobInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(vaultName),
		JobParameters: &types.JobParameters{
			Type:   aws.String("inventory-retrieval"),
			Format: aws.String("JSON"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to initiate inventory retrieval for vault %s: %w", vaultName, err)
	}

	jobID := aws.ToString(out.JobId)
	if jobID == "" {
		return "", fmt.Errorf("inventory retrieval for vault %s returned no job id", vaultName)
	}
	return jobID, nil
}

// DescribeJob returns the current state of a job.
func (c *Client) DescribeJob(ctx context.Context, vaultName, jobID string) (*Job, error) {
	out, err := c.glacier.DescribeJob(ctx, &glacier.DescribeJobInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(vaultName),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe job %s: %w", jobID, err)
	}

	job := jobFrom(types.GlacierJobDescription{
		JobId:          out.JobId,
		Action:         out.Action,
		StatusCode:     out.StatusCode,
		StatusMessage:  out.StatusMessage,
		CreationDate:   out.CreationDate,
		CompletionDate: out.CompletionDate,
	})
	if job.ID == "" {
		job.ID = jobID
	}
	return &job, nil
}

// GetJobOutput opens the output of a completed job. The caller closes it.
func (c *Client) GetJobOutput(ctx context.Context, vaultName, jobID string) (io.ReadCloser, error) {
	out, err := c.glacier.GetJobOutput(ctx, &glacier.GetJobOutputInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(vaultName),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get output of job %s: %w", jobID, err)
	}
	return out.Body, nil
}

// DeleteArchive deletes one archive from the vault.
func (c *Client) DeleteArchive(ctx context.Context, vaultName, archiveID string) error {
	_, err := c.glacier.DeleteArchive(ctx, &glacier.DeleteArchiveInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(vaultName),
		ArchiveId: aws.String(archiveID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete archive %s: %w", archiveID, err)
	}
	return nil
}

// DeleteVault deletes the vault. Glacier refuses unless the vault has been
// empty since its last inventory.
func (c *Client) DeleteVault(ctx context.Context, vaultName string) error {
	_, err := c.glacier.DeleteVault(ctx, &glacier.DeleteVaultInput{
		AccountId: aws.String(c.accountID),
		VaultName: aws.String(vaultName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete vault %s: %w", vaultName, err)
	}
	return nil
}

func (c *Client) vaultFrom(v types.DescribeVaultOutput) Vault {
	vault := Vault{
		Name:              aws.ToString(v.VaultName),
		ARN:               aws.ToString(v.VaultARN),
		CreationDate:      aws.ToString(v.CreationDate),
		LastInventoryDate: aws.ToString(v.LastInventoryDate),
		NumberOfArchives:  v.NumberOfArchives,
		SizeInBytes:       v.SizeInBytes,
	}
	vault.AccountID = AccountIDFromARN(vault.ARN, c.accountID)
	return vault
}

func jobFrom(j types.GlacierJobDescription) Job {
	return Job{
		ID:             aws.ToString(j.JobId),
		Action:         string(j.Action),
		Status:         JobStatus(j.StatusCode),
		StatusMessage:  aws.ToString(j.StatusMessage),
		CreationDate:   aws.ToString(j.CreationDate),
		CompletionDate: aws.ToString(j.CompletionDate),
	}
}

// AccountIDFromARN extracts the account id of a vault ARN, falling back to
// fallback when the ARN is missing or malformed.
func AccountIDFromARN(vaultARN, fallback string) string {
	if vaultARN == "" {
		return fallback
	}
	parsed, err := arn.Parse(vaultARN)
	if err != nil || parsed.AccountID == "" {
		return fallback
	}
	return parsed.AccountID
}

// ErrorCode returns the Glacier API error code carried by err, or "" when
// err did not come from the service.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsNotFound reports whether err means the vault, job or archive does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}

	return ErrorCode(err) == "ResourceNotFoundException"
}
