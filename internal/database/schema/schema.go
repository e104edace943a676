package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Catalog Schema

CREATE TABLE IF NOT EXISTS tags (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    tag_group VARCHAR(20) NOT NULL,
    name VARCHAR(100) NOT NULL,
    color VARCHAR(20),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    UNIQUE (tag_group, name)
);

CREATE TABLE IF NOT EXISTS inflatables (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(200) NOT NULL,
    description TEXT,
    short_description TEXT,
    type VARCHAR(30) NOT NULL DEFAULT 'other',
    age_min INTEGER,
    age_max INTEGER,
    max_capacity INTEGER,
    simultaneous_capacity INTEGER,
    length NUMERIC(6,2),
    width NUMERIC(6,2),
    height NUMERIC(6,2),
    min_space_length NUMERIC(6,2),
    min_space_width NUMERIC(6,2),
    indoor_suitable BOOLEAN NOT NULL DEFAULT FALSE,
    outdoor_suitable BOOLEAN NOT NULL DEFAULT TRUE,
    surface_types TEXT[] NOT NULL DEFAULT '{}',
    requires_power BOOLEAN NOT NULL DEFAULT TRUE,
    outlet_count INTEGER,
    setup_time_minutes INTEGER,
    base_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    duration_prices JSONB,
    price_per_hour NUMERIC(10,2),
    delivery_price NUMERIC(10,2),
    tag_ids TEXT[] NOT NULL DEFAULT '{}',
    intensity VARCHAR(10),
    is_competitive BOOLEAN NOT NULL DEFAULT FALSE,
    event_types_fit TEXT[] NOT NULL DEFAULT '{}',
    wow_factor INTEGER CHECK (wow_factor BETWEEN 1 AND 5),
    color_theme VARCHAR(100),
    best_for_notes TEXT,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    sort_order INTEGER NOT NULL DEFAULT 0,
    CHECK (age_min IS NULL OR age_max IS NULL OR age_min <= age_max)
);

CREATE INDEX IF NOT EXISTS idx_inflatables_active ON inflatables (is_active, sort_order);

-- Scheduling Schema

CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    inflatable_id UUID NOT NULL REFERENCES inflatables(id) ON DELETE CASCADE,
    start_date CHAR(10) NOT NULL,
    end_date CHAR(10) NOT NULL,
    start_time VARCHAR(5),
    end_time VARCHAR(5),
    status VARCHAR(20) NOT NULL DEFAULT 'tentative',
    client_name VARCHAR(200),
    client_phone VARCHAR(50),
    client_email VARCHAR(200),
    price NUMERIC(10,2) NOT NULL DEFAULT 0,
    booking_number VARCHAR(50) UNIQUE,
    CHECK (start_date <= end_date)
);

CREATE INDEX IF NOT EXISTS idx_bookings_item_dates ON bookings (inflatable_id, start_date, end_date);
CREATE INDEX IF NOT EXISTS idx_bookings_dates ON bookings (start_date, end_date) WHERE status <> 'cancelled';

CREATE TABLE IF NOT EXISTS availability_blocks (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    inflatable_id UUID NOT NULL REFERENCES inflatables(id) ON DELETE CASCADE,
    start_date CHAR(10) NOT NULL,
    end_date CHAR(10) NOT NULL,
    reason VARCHAR(20) NOT NULL DEFAULT 'other',
    reason_description TEXT,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    CHECK (start_date <= end_date)
);

CREATE INDEX IF NOT EXISTS idx_blocks_item_dates ON availability_blocks (inflatable_id, start_date, end_date) WHERE is_active;
`

// VectorSchemaSQL initializes the semantic search store. It lives in a
// separate database that has the pgvector extension installed.
const VectorSchemaSQL = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS inflatable_search (
    inflatable_id UUID PRIMARY KEY,
    content TEXT NOT NULL,
    embedding vector(1536) NOT NULL,
    metadata JSONB NOT NULL DEFAULT '{}',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_inflatable_search_embedding
    ON inflatable_search USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100);
`
