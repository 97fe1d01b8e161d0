package store

// SQL query constants organized by entity.
// PostgresStore methods reference these constants.

// Credential queries.
const (
	credentialColumns = `id, user_id, marketplace, external_user_id,
		access_token, refresh_token, expires_at,
		fulfillment_policy_id, payment_policy_id, return_policy_id,
		created_at, updated_at`

	queryGetCredential = `
		SELECT ` + credentialColumns + `
		FROM marketplace_credentials
		WHERE user_id = $1 AND marketplace = $2`

	queryGetCredentialByExternalUser = `
		SELECT ` + credentialColumns + `
		FROM marketplace_credentials
		WHERE marketplace = $1 AND external_user_id = $2
		ORDER BY updated_at DESC
		LIMIT 1`

	queryUpsertCredential = `
		INSERT INTO marketplace_credentials (
			user_id, marketplace, external_user_id,
			access_token, refresh_token, expires_at,
			created_at, updated_at
		) VALUES (
			@user_id, @marketplace, @external_user_id,
			@access_token, @refresh_token, @expires_at,
			now(), now()
		)
		ON CONFLICT (user_id, marketplace) DO UPDATE SET
			external_user_id = COALESCE(NULLIF(EXCLUDED.external_user_id, ''), marketplace_credentials.external_user_id),
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryUpdateCredentialTokens = `
		UPDATE marketplace_credentials SET
			access_token = @access_token,
			refresh_token = @refresh_token,
			expires_at = @expires_at,
			updated_at = now()
		WHERE user_id = @user_id AND marketplace = @marketplace
		RETURNING updated_at`

	queryUpdateCredentialPolicies = `
		UPDATE marketplace_credentials SET
			fulfillment_policy_id = @fulfillment_policy_id,
			payment_policy_id = @payment_policy_id,
			return_policy_id = @return_policy_id,
			updated_at = now()
		WHERE user_id = @user_id AND marketplace = @marketplace
		RETURNING updated_at`

	queryDeleteCredential = `
		DELETE FROM marketplace_credentials
		WHERE user_id = $1 AND marketplace = $2`
)

// Listing queries.
const (
	listingColumns = `id, owner_id, title, description, category, brand, condition,
	tags, image_urls, price, ship_city, ship_postal_code, ship_state,
	marketplaces, marketplace_status,
	COALESCE(ebay_item_id, ''), COALESCE(ebay_sku, ''), COALESCE(ebay_offer_id, ''),
	created_at, updated_at`

	listingColumnsSelect = "SELECT " + listingColumns + "\nFROM listings"

	queryInsertListing = `
		INSERT INTO listings (
			owner_id, title, description, category, brand, condition,
			tags, image_urls, price, ship_city, ship_postal_code, ship_state,
			marketplaces, marketplace_status,
			created_at, updated_at
		) VALUES (
			@owner_id, @title, @description, @category, @brand, @condition,
			@tags, @image_urls, @price, @ship_city, @ship_postal_code, @ship_state,
			@marketplaces, @marketplace_status,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetListingByID = listingColumnsSelect + `
		WHERE id = $1`

	queryGetListingByEbayItemID = listingColumnsSelect + `
		WHERE ebay_item_id = $1`

	queryUpdatePublishState = `
		UPDATE listings SET
			marketplaces = @marketplaces,
			marketplace_status = @marketplace_status,
			category = @category,
			ebay_item_id = NULLIF(@ebay_item_id, ''),
			ebay_sku = NULLIF(@ebay_sku, ''),
			ebay_offer_id = NULLIF(@ebay_offer_id, ''),
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryUpdateListing = `
		UPDATE listings SET
			title = @title,
			description = @description,
			category = @category,
			brand = @brand,
			condition = @condition,
			tags = @tags,
			image_urls = @image_urls,
			price = @price,
			ship_city = @ship_city,
			ship_postal_code = @ship_postal_code,
			ship_state = @ship_state,
			marketplaces = @marketplaces,
			marketplace_status = @marketplace_status,
			updated_at = now()
		WHERE id = @id AND updated_at = @updated_at
		RETURNING updated_at`

	// A marketplace can be claimed when it failed, or when it has been
	// pending longer than the stale cutoff (an abandoned attempt).
	queryClaimPublish = `
		UPDATE listings SET
			marketplace_status = jsonb_set(marketplace_status, ARRAY[@marketplace::text], '"pending"'),
			updated_at = now()
		WHERE id = @id
			AND @marketplace::text = ANY(marketplaces)
			AND (
				marketplace_status ->> @marketplace::text = 'failed'
				OR (marketplace_status ->> @marketplace::text = 'pending' AND updated_at < @stale_before)
			)`

	queryDeleteListing = `DELETE FROM listings WHERE id = $1`

	queryCountListings = `SELECT count(*) FROM listings WHERE owner_id = $1`

	queryListingStatusCounts = `
		SELECT s.value, count(*)
		FROM listings, jsonb_each_text(listings.marketplace_status) AS s
		WHERE owner_id = $1
		GROUP BY s.value`

	queryTopCategories = `
		SELECT category, count(*) AS n
		FROM listings
		WHERE owner_id = $1 AND category <> ''
		GROUP BY category
		ORDER BY n DESC, category
		LIMIT $2`
)

// Category cache queries.
const (
	queryGetCategoryCache = `
		SELECT key, entries, source, refreshed_at
		FROM category_cache
		WHERE key = $1`

	queryUpsertCategoryCache = `
		INSERT INTO category_cache (key, entries, source, refreshed_at)
		VALUES (@key, @entries, @source, @refreshed_at)
		ON CONFLICT (key) DO UPDATE SET
			entries = EXCLUDED.entries,
			source = EXCLUDED.source,
			refreshed_at = EXCLUDED.refreshed_at`
)
