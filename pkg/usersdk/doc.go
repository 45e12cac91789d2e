/*
Package usersdk is a client SDK for the userdesk user-management service,
plus the wire types and error codes the service itself writes.

# Sessions

The service authenticates with a signed session token carried in an HttpOnly
cookie. A Client keeps a cookie jar, so logging in once is enough for the
following calls:

	client, err := usersdk.NewClient("http://localhost:8080")
	if err != nil {
		return err
	}

	login, err := client.Login(ctx, "admin", "password123")
	if err != nil {
		return err
	}

	me, err := client.Me(ctx)

Admin operations need the logged-in user to be an admin:

	created, err := client.CreateUser(ctx, usersdk.CreateUserRequest{
		Username: "alice",
		Password: "correct horse battery staple",
	})

	err = client.UpdateUser(ctx, created.UserID, usersdk.UpdateUserRequest{
		ProfilePictureURL: usersdk.String("https://example.com/alice.png"),
	})

# Errors

Non-2xx responses come back as *APIError, carrying the HTTP status plus the
service's error code and description:

	var apiErr *usersdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// not an admin
	}
*/
package usersdk
