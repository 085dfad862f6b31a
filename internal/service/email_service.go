package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"growlog/internal/models"
)

// EmailService sends growth report emails via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. An empty fromEmail yields a
// disabled service that skips all sends.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendGrowthReportEmail sends a child's growth report summary with a share link
func (s *EmailService) SendGrowthReportEmail(ctx context.Context, toEmail, toName, childName string, report *models.GrowthReport, shareLink string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): growth report to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("%s의 성장 리포트 (%s ~ %s)", childName, report.Period.Start, report.Period.End)

	var insightItems strings.Builder
	for _, insight := range report.Insights {
		insightItems.WriteString(fmt.Sprintf("<li>%s</li>\n", insight))
	}
	if insightItems.Len() == 0 {
		insightItems.WriteString("<li>아직 기록이 충분하지 않아요.</li>\n")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.button { display: inline-block; padding: 12px 30px; background-color: #4a90e2; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>%s의 성장 리포트</h1>
		</div>
		<div class="content">
			<p>%s님, 안녕하세요.</p>
			<p>%s ~ %s 동안 %s이(가) %d개의 기록을 남겼어요.</p>
			<ul>
%s			</ul>
			<p style="text-align: center;">
				<a href="%s" class="button">리포트 전체 보기</a>
			</p>
		</div>
		<div class="footer">
			<p>이 메일은 자동으로 발송되었습니다. 회신하지 말아 주세요.</p>
		</div>
	</div>
</body>
</html>
`, childName, toName, report.Period.Start, report.Period.End, childName, report.TotalAnswers, insightItems.String(), shareLink)

	var textInsights strings.Builder
	for _, insight := range report.Insights {
		textInsights.WriteString("- " + insight + "\n")
	}
	if textInsights.Len() == 0 {
		textInsights.WriteString("- 아직 기록이 충분하지 않아요.\n")
	}

	textBody := fmt.Sprintf(`%s님, 안녕하세요.

%s ~ %s 동안 %s이(가) %d개의 기록을 남겼어요.

%s
리포트 전체 보기: %s

---
이 메일은 자동으로 발송되었습니다. 회신하지 말아 주세요.
`, toName, report.Period.Start, report.Period.End, childName, report.TotalAnswers, textInsights.String(), shareLink)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
